package constant

// Default glyphs, overridable from config
const (
	GlyphBlank     = ' '
	GlyphPlayer    = 'A'
	GlyphShot      = '|'
	GlyphExplosion = '*'
	GlyphInvaderA  = 'x'
	GlyphInvaderB  = '+'
)
