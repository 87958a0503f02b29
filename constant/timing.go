package constant

import "time"

// Game Loop Timing
const (
	// FrameSleep is the pause at the end of every tick, favouring input latency over pacing
	FrameSleep = 1 * time.Millisecond

	// InputQueueSize is the buffered capacity between the tcell poller and the tick drain
	InputQueueSize = 256
)

// Entity Timing
const (
	// ShotStepInterval is the time a projectile needs to climb one row
	ShotStepInterval = 50 * time.Millisecond

	// ExplosionDuration is how long a hit mark stays on screen
	ExplosionDuration = 250 * time.Millisecond

	// InvaderMoveInterval is the swarm step period at full strength
	InvaderMoveInterval = 2000 * time.Millisecond

	// InvaderMinMoveInterval floors the step period as the swarm thins out
	InvaderMinMoveInterval = 150 * time.Millisecond
)
