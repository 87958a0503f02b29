package entity

import (
	"slices"
	"time"

	"github.com/lixenwraith/invaders/constant"
	"github.com/lixenwraith/invaders/core"
)

// Swarm is the invader formation; it moves and is timed as one unit
type Swarm struct {
	bounds    core.Bounds
	skin      *Skin
	invaders  []core.Point
	initial   int
	direction int

	// Step timer: remaining counts down, interval is the current period
	remaining time.Duration
	interval  time.Duration

	// threshold is the row at which the swarm has landed
	threshold int
}

// NewSwarm builds the standard formation in the upper playfield
func NewSwarm(b core.Bounds, skin *Skin) *Swarm {
	var positions []core.Point
	for y := constant.InvaderFirstRow; y <= constant.InvaderLastRow && y < b.Height; y += constant.InvaderSpacing {
		for x := constant.InvaderMarginX; x < b.Width-constant.InvaderMarginX; x += constant.InvaderSpacing {
			positions = append(positions, core.Point{X: x, Y: y})
		}
	}
	return NewSwarmAt(b, skin, positions)
}

// NewSwarmAt builds a swarm from explicit positions
func NewSwarmAt(b core.Bounds, skin *Skin, positions []core.Point) *Swarm {
	if skin == nil {
		skin = DefaultSkin()
	}
	return &Swarm{
		bounds:    b,
		skin:      skin,
		invaders:  slices.Clone(positions),
		initial:   len(positions),
		direction: 1,
		remaining: constant.InvaderMoveInterval,
		interval:  constant.InvaderMoveInterval,
		threshold: b.Height - 1,
	}
}

// Positions returns a copy of live invader cells
func (s *Swarm) Positions() []core.Point {
	return slices.Clone(s.invaders)
}

// Len returns the number of live invaders
func (s *Swarm) Len() int {
	return len(s.invaders)
}

// Direction returns +1 when marching right, -1 when marching left
func (s *Swarm) Direction() int {
	return s.direction
}

// Interval returns the current step period
func (s *Swarm) Interval() time.Duration {
	return s.interval
}

// Update runs the step timer and moves the swarm when it fires.
// A step is a one-column shift, or, when that would cross a side wall,
// a direction flip plus a one-row descent. Returns true when a step was taken.
func (s *Swarm) Update(elapsed time.Duration) bool {
	s.remaining -= elapsed
	if s.remaining > 0 {
		return false
	}

	s.interval = s.stepInterval()
	s.remaining = s.interval

	if s.wouldCrossWall() {
		s.direction = -s.direction
		for i := range s.invaders {
			s.invaders[i].Y++
		}
		return true
	}

	for i := range s.invaders {
		s.invaders[i].X += s.direction
	}
	return true
}

// stepInterval shrinks the period in proportion to losses
func (s *Swarm) stepInterval() time.Duration {
	if s.initial == 0 {
		return constant.InvaderMinMoveInterval
	}
	d := constant.InvaderMoveInterval * time.Duration(len(s.invaders)) / time.Duration(s.initial)
	return max(d, constant.InvaderMinMoveInterval)
}

func (s *Swarm) wouldCrossWall() bool {
	for _, p := range s.invaders {
		x := p.X + s.direction
		if x < 0 || x >= s.bounds.Width {
			return true
		}
	}
	return false
}

// KillAt removes the invader at p, reporting whether one was there
func (s *Swarm) KillAt(p core.Point) bool {
	i := slices.Index(s.invaders, p)
	if i < 0 {
		return false
	}
	s.invaders = slices.Delete(s.invaders, i, i+1)
	return true
}

// AllKilled reports an empty swarm
func (s *Swarm) AllKilled() bool {
	return len(s.invaders) == 0
}

// ReachedBottom reports whether any invader has reached the player's row
func (s *Swarm) ReachedBottom() bool {
	for _, p := range s.invaders {
		if p.Y >= s.threshold {
			return true
		}
	}
	return false
}

// Draw renders every live invader; the glyph flips halfway through each step period
func (s *Swarm) Draw(f *core.Frame) {
	glyph := s.skin.Invader[0]
	if s.remaining <= s.interval/2 {
		glyph = s.skin.Invader[1]
	}
	for _, p := range s.invaders {
		f.SetRune(p, glyph, s.skin.invaderStyle(p.Y))
	}
}
