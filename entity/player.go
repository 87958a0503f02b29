package entity

import (
	"time"

	"github.com/lixenwraith/invaders/constant"
	"github.com/lixenwraith/invaders/core"
)

// Shot is a live player projectile
type Shot struct {
	Pos     core.Point
	elapsed time.Duration // accumulated toward the next row step
}

type explosion struct {
	pos  core.Point
	left time.Duration
}

// Player is the cannon on the bottom row and owns its projectiles
type Player struct {
	bounds     core.Bounds
	skin       *Skin
	pos        core.Point
	maxShots   int
	shots      []Shot
	explosions []explosion
}

// NewPlayer places the player centred on the bottom row
func NewPlayer(b core.Bounds, skin *Skin) *Player {
	if skin == nil {
		skin = DefaultSkin()
	}
	return &Player{
		bounds:   b,
		skin:     skin,
		pos:      core.Point{X: b.Width / 2, Y: b.Height - 1},
		maxShots: constant.MaxShots,
		shots:    make([]Shot, 0, constant.MaxShots),
	}
}

// Position returns the player cell
func (p *Player) Position() core.Point {
	return p.pos
}

// Shots returns a copy of live projectile positions
func (p *Player) Shots() []core.Point {
	out := make([]core.Point, len(p.shots))
	for i, s := range p.shots {
		out[i] = s.Pos
	}
	return out
}

// MoveLeft moves one column left, no-op at the wall
func (p *Player) MoveLeft() {
	if p.pos.X > 0 {
		p.pos.X--
	}
}

// MoveRight moves one column right, no-op at the wall
func (p *Player) MoveRight() {
	if p.pos.X < p.bounds.Width-1 {
		p.pos.X++
	}
}

// Shoot spawns a projectile one row above the player.
// Returns false without effect when the shot cap is reached.
func (p *Player) Shoot() bool {
	if len(p.shots) >= p.maxShots || p.pos.Y == 0 {
		return false
	}
	p.shots = append(p.shots, Shot{Pos: core.Point{X: p.pos.X, Y: p.pos.Y - 1}})
	return true
}

// Update advances projectiles at most one row per call and expires hit marks
func (p *Player) Update(elapsed time.Duration) {
	live := p.shots[:0]
	for _, s := range p.shots {
		s.elapsed += elapsed
		if s.elapsed >= constant.ShotStepInterval {
			// No backlog: a long tick still moves a single row
			s.elapsed = min(s.elapsed-constant.ShotStepInterval, constant.ShotStepInterval-1)
			s.Pos.Y--
		}
		if s.Pos.Y >= 0 {
			live = append(live, s)
		}
	}
	p.shots = live

	active := p.explosions[:0]
	for _, e := range p.explosions {
		e.left -= elapsed
		if e.left > 0 {
			active = append(active, e)
		}
	}
	p.explosions = active
}

// DetectHit removes every projectile and invader sharing a cell.
// Collision is exact cell equality, no partial overlap.
func (p *Player) DetectHit(s *Swarm) bool {
	hit := false
	live := p.shots[:0]
	for _, shot := range p.shots {
		if s.KillAt(shot.Pos) {
			hit = true
			p.explosions = append(p.explosions, explosion{pos: shot.Pos, left: constant.ExplosionDuration})
			continue
		}
		live = append(live, shot)
	}
	p.shots = live
	return hit
}

// Draw renders the player, its projectiles and fading hit marks
func (p *Player) Draw(f *core.Frame) {
	f.SetRune(p.pos, p.skin.Player, p.skin.PlayerStyle)
	for _, e := range p.explosions {
		f.SetRune(e.pos, p.skin.Explosion, p.skin.ExplosionStyle)
	}
	for _, s := range p.shots {
		f.SetRune(s.Pos, p.skin.Shot, p.skin.ShotStyle)
	}
}
