package terminal

const glyphHeight = 5

var glyphs = [...][glyphHeight]string{
	{
		"           ",
		"           ",
		"           ",
		"           ",
		"           ",
	},
	{
		"┌─────────┐",
		"│         │",
		"│    ●    │",
		"│         │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│    ●    │",
		"│         │",
		"│    ●    │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●      │",
		"│    ●    │",
		"│      ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│         │",
		"│  ●   ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│    ●    │",
		"│  ●   ●  │",
		"└─────────┘",
	},
	{
		"┌─────────┐",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"└─────────┘",
	},
}

// Glyph returns the lines of a die face. Face 0 (and anything out of range)
// is an empty slot.
func Glyph(face int) [glyphHeight]string {
	if face < 0 || face >= len(glyphs) {
		return glyphs[0]
	}
	return glyphs[face]
}
