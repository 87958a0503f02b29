package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/invaders/constant"
	"github.com/mattn/go-runewidth"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the session configuration loaded from TOML
type Config struct {
	SoundDir   string        `toml:"sound_dir"`
	FrameSleep time.Duration `toml:"frame_sleep"`
	Volume     float64       `toml:"volume"`
	Debug      bool          `toml:"debug"`

	// Keys maps action name to key names; listed actions replace their default bindings
	Keys map[string][]string `toml:"keys"`

	Glyphs Glyphs `toml:"glyphs"`
}

// Glyphs are single-column characters drawn for each entity
type Glyphs struct {
	Player    string   `toml:"player"`
	Shot      string   `toml:"shot"`
	Explosion string   `toml:"explosion"`
	Invader   []string `toml:"invader"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SoundDir:   "./sounds",
		FrameSleep: constant.FrameSleep,
		Volume:     1.0,
		Glyphs: Glyphs{
			Player:    string(constant.GlyphPlayer),
			Shot:      string(constant.GlyphShot),
			Explosion: string(constant.GlyphExplosion),
			Invader:   []string{string(constant.GlyphInvaderA), string(constant.GlyphInvaderB)},
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config: unknown keys %v: %w", undecoded, ErrInvalid)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from environment variables; unparsable values are ignored
func (c *Config) applyEnv() {
	if dir := os.Getenv("INVADERS_SOUND_DIR"); dir != "" {
		c.SoundDir = dir
	}

	// Volume is 0-100 in the environment
	if volume := os.Getenv("INVADERS_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if debug := os.Getenv("INVADERS_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil {
			c.Debug = val
		}
	}
}

// Validate checks ranges and glyph shapes
func (c *Config) Validate() error {
	if c.SoundDir == "" {
		return fmt.Errorf("config: sound_dir is empty: %w", ErrInvalid)
	}
	if c.FrameSleep < 0 {
		return fmt.Errorf("config: frame_sleep %v is negative: %w", c.FrameSleep, ErrInvalid)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("config: volume %v outside [0,1]: %w", c.Volume, ErrInvalid)
	}

	single := map[string]string{
		"player":    c.Glyphs.Player,
		"shot":      c.Glyphs.Shot,
		"explosion": c.Glyphs.Explosion,
	}
	for name, g := range single {
		if _, err := glyphRune(g); err != nil {
			return fmt.Errorf("config: glyphs.%s: %w", name, err)
		}
	}

	if len(c.Glyphs.Invader) != 2 {
		return fmt.Errorf("config: glyphs.invader needs 2 entries, got %d: %w", len(c.Glyphs.Invader), ErrInvalid)
	}
	for i, g := range c.Glyphs.Invader {
		if _, err := glyphRune(g); err != nil {
			return fmt.Errorf("config: glyphs.invader[%d]: %w", i, err)
		}
	}
	return nil
}

// Runes returns the validated glyphs as runes
func (g Glyphs) Runes() (player, shot, explosion rune, invader [2]rune) {
	player, _ = glyphRune(g.Player)
	shot, _ = glyphRune(g.Shot)
	explosion, _ = glyphRune(g.Explosion)
	invader[0], _ = glyphRune(g.Invader[0])
	invader[1], _ = glyphRune(g.Invader[1])
	return
}

// glyphRune accepts exactly one rune occupying one terminal column
func glyphRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%q is not a single character: %w", s, ErrInvalid)
	}
	if w := runewidth.RuneWidth(runes[0]); w != 1 {
		return 0, fmt.Errorf("%q is %d columns wide: %w", s, w, ErrInvalid)
	}
	return runes[0], nil
}
