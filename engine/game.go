package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/constant"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/entity"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/render"
)

// Cues plays named sound cues without blocking the caller
type Cues interface {
	Play(name string)
	Wait()
}

// Input drains pending key events without blocking
type Input interface {
	Poll() ([]*tcell.EventKey, error)
}

// FrameSink takes ownership of a completed frame
type FrameSink interface {
	Send(f *core.Frame) error
}

// Options configures a session. Zero Bounds and nil fields take package defaults;
// zero FrameSleep runs ticks back to back.
type Options struct {
	Bounds     core.Bounds
	FrameSleep time.Duration
	Keys       *input.KeyTable
	Skin       *entity.Skin
	Clock      Clock
}

func (o *Options) fill() {
	if o.Bounds.Width <= 0 || o.Bounds.Height <= 0 {
		o.Bounds = core.Bounds{Width: constant.PlayfieldWidth, Height: constant.PlayfieldHeight}
	}
	if o.FrameSleep < 0 {
		o.FrameSleep = 0
	}
	if o.Keys == nil {
		o.Keys = input.DefaultKeyTable()
	}
	if o.Skin == nil {
		o.Skin = entity.DefaultSkin()
	}
	if o.Clock == nil {
		o.Clock = NewTimeProvider()
	}
}

// Game owns the player and swarm for one session and drives them tick by tick
type Game struct {
	opts      Options
	player    *entity.Player
	swarm     *entity.Swarm
	drawables []core.Drawable
	input     Input
	cues      Cues
	ticks     uint64
}

// NewGame creates a session with a fresh player and swarm
func NewGame(opts Options, in Input, cues Cues) *Game {
	opts.fill()
	g := &Game{
		opts:  opts,
		input: in,
		cues:  cues,
	}
	g.setEntities(
		entity.NewPlayer(opts.Bounds, opts.Skin),
		entity.NewSwarm(opts.Bounds, opts.Skin),
	)
	return g
}

func (g *Game) setEntities(p *entity.Player, s *entity.Swarm) {
	g.player = p
	g.swarm = s
	g.drawables = []core.Drawable{p, s}
}

// Player returns the session player
func (g *Game) Player() *entity.Player {
	return g.player
}

// Swarm returns the session swarm
func (g *Game) Swarm() *entity.Swarm {
	return g.swarm
}

// Tick advances the session by elapsed and sends one frame unless the player quit
func (g *Game) Tick(elapsed time.Duration, frames FrameSink) (Outcome, error) {
	g.ticks++

	events, err := g.input.Poll()
	if err != nil {
		return OutcomeNone, fmt.Errorf("engine: poll input: %w", err)
	}
	for _, ev := range events {
		switch g.opts.Keys.Resolve(ev) {
		case input.ActionQuit:
			g.cues.Play(constant.CueLose)
			return OutcomeQuit, nil
		case input.ActionShoot:
			if g.player.Shoot() {
				g.cues.Play(constant.CuePew)
			}
		case input.ActionLeft:
			g.player.MoveLeft()
		case input.ActionRight:
			g.player.MoveRight()
		}
	}

	g.player.Update(elapsed)
	if g.swarm.Update(elapsed) {
		g.cues.Play(constant.CueMove)
	}
	if g.player.DetectHit(g.swarm) {
		g.cues.Play(constant.CueExplode)
	}

	frame := core.NewFrame(g.opts.Bounds)
	for _, d := range g.drawables {
		d.Draw(frame)
	}
	if err := frames.Send(frame); err != nil {
		return OutcomeNone, fmt.Errorf("engine: send frame: %w", err)
	}

	switch {
	case g.swarm.AllKilled():
		g.cues.Play(constant.CueWin)
		return OutcomeWin, nil
	case g.swarm.ReachedBottom():
		g.cues.Play(constant.CueLose)
		return OutcomeLose, nil
	}
	return OutcomeNone, nil
}

// Run plays the session on sink until win, lose, quit or an input failure.
// The render worker is drained and joined, then pending cues finish, before Run returns.
func (g *Game) Run(sink render.Sink) (Outcome, error) {
	worker := render.NewWorker(sink, g.opts.Bounds)
	worker.Start()

	g.cues.Play(constant.CueStartup)
	log.Printf("engine: session started on %dx%d", g.opts.Bounds.Width, g.opts.Bounds.Height)

	outcome, err := g.loop(worker)

	worker.Stop()
	g.cues.Wait()

	if err != nil {
		log.Printf("engine: session aborted after %d ticks: %v", g.ticks, err)
		return outcome, err
	}
	log.Printf("engine: session ended after %d ticks: %s", g.ticks, outcome)
	return outcome, nil
}

func (g *Game) loop(frames FrameSink) (Outcome, error) {
	clock := g.opts.Clock
	last := clock.Now()
	for {
		elapsed := Since(clock, last)
		last = last.Add(elapsed)

		outcome, err := g.Tick(elapsed, frames)
		if err != nil || outcome != OutcomeNone {
			return outcome, err
		}
		if g.opts.FrameSleep > 0 {
			time.Sleep(g.opts.FrameSleep)
		}
	}
}
