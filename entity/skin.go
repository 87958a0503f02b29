package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/invaders/constant"
)

// Skin holds the glyphs and styles entities draw with
type Skin struct {
	Player    rune
	Shot      rune
	Explosion rune
	Invader   [2]rune // alternated by swarm move phase

	PlayerStyle    tcell.Style
	ShotStyle      tcell.Style
	ExplosionStyle tcell.Style

	// InvaderStyles is indexed by row and cycled; empty means default style
	InvaderStyles []tcell.Style
}

// DefaultSkin returns the stock glyph set
func DefaultSkin() *Skin {
	return &Skin{
		Player:         constant.GlyphPlayer,
		Shot:           constant.GlyphShot,
		Explosion:      constant.GlyphExplosion,
		Invader:        [2]rune{constant.GlyphInvaderA, constant.GlyphInvaderB},
		PlayerStyle:    tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
		ShotStyle:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
		ExplosionStyle: tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true),
	}
}

func (s *Skin) invaderStyle(row int) tcell.Style {
	if len(s.InvaderStyles) == 0 {
		return tcell.StyleDefault
	}
	return s.InvaderStyles[row%len(s.InvaderStyles)]
}
