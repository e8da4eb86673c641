package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs and colours used for terrain. Emoji carry their
// own colours, so lit and remembered cells use distinct glyphs.
type Theme struct {
	Wall     string
	Floor    string
	DimWall  string
	DimFloor string

	Reticle    tcell.Color // targetable cells
	Cursor     tcell.Color
	Background tcell.Color
	Text       tcell.Color
	Log        tcell.Color
	Danger     tcell.Color
}

// DefaultTheme is the goblin-cave look.
var DefaultTheme = Theme{
	Wall:       "🪨",
	Floor:      "🟫",
	DimWall:    "🌑",
	DimFloor:   "🔲",
	Reticle:    tcell.ColorDarkCyan,
	Cursor:     tcell.ColorYellow,
	Background: tcell.ColorBlack,
	Text:       tcell.ColorWhite,
	Log:        tcell.ColorLightYellow,
	Danger:     tcell.ColorRed,
}
