package constant

// Playfield dimensions in terminal cells
const (
	PlayfieldWidth  = 40
	PlayfieldHeight = 20
)

// Projectile limits
const (
	// MaxShots caps live player projectiles
	MaxShots = 2
)

// Swarm formation, placed in the upper playfield
const (
	// InvaderMarginX keeps the outer formation columns off the side walls
	InvaderMarginX = 2

	// InvaderFirstRow and InvaderLastRow bound the formation rows (inclusive)
	InvaderFirstRow = 2
	InvaderLastRow  = 8

	// InvaderSpacing is the gap between neighbours on both axes
	InvaderSpacing = 2
)
