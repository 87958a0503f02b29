package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constant"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/entity"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	soundsFlag = flag.String("sounds", "", "Directory of .wav cues (overrides config)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/invaders.log")
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *soundsFlag != "" {
		cfg.SoundDir = *soundsFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.BindKeys(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind keys: %v\n", err)
		os.Exit(1)
	}

	outcome, err := run(cfg, keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(banner(outcome))
}

// run owns the audio and terminal lifetimes around one session
func run(cfg *config.Config, keys *input.KeyTable) (engine.Outcome, error) {
	audioCfg := audio.DefaultConfig()
	audioCfg.Volume = cfg.Volume
	sounds := audio.NewManager(audioCfg)
	defer sounds.Close()

	if _, err := sounds.LoadDir(cfg.SoundDir); err != nil {
		return engine.OutcomeNone, fmt.Errorf("load sounds: %w", err)
	}

	// Missing speaker is not fatal, the game runs silent
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
	}

	host, err := terminal.Open()
	if err != nil {
		return engine.OutcomeNone, fmt.Errorf("initialize terminal: %w", err)
	}
	defer host.Fini()

	game := engine.NewGame(engine.Options{
		Bounds:     core.Bounds{Width: constant.PlayfieldWidth, Height: constant.PlayfieldHeight},
		FrameSleep: cfg.FrameSleep,
		Keys:       keys,
		Skin:       buildSkin(cfg.Glyphs),
	}, host, sounds)

	return game.Run(host.Screen())
}

// buildSkin applies configured glyphs over the stock skin and colours invaders by row
func buildSkin(g config.Glyphs) *entity.Skin {
	skin := entity.DefaultSkin()
	skin.Player, skin.Shot, skin.Explosion, skin.Invader = g.Runes()
	skin.InvaderStyles = render.RowStyles(constant.PlayfieldHeight)
	return skin
}

func banner(o engine.Outcome) string {
	switch o {
	case engine.OutcomeWin:
		return "The swarm is destroyed. You win!"
	case engine.OutcomeLose:
		return "The swarm has landed. Game over."
	default:
		return "Bye."
	}
}
