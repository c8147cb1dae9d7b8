package render

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// Glyph returns the fixed-width character for a cell kind
func Glyph(k engine.CellKind) rune {
	switch k {
	case engine.CellHead:
		return constants.GlyphHead
	case engine.CellBody:
		return constants.GlyphBody
	case engine.CellFruit:
		return constants.GlyphFruit
	case engine.CellWall:
		return constants.GlyphWall
	default:
		return constants.GlyphEmpty
	}
}

// StatusLine formats the scoreboard, delay in whole milliseconds
func StatusLine(s engine.Stats) string {
	return fmt.Sprintf(constants.StatusFormat, s.Score, s.Length, s.Level, s.Delay.Milliseconds())
}
