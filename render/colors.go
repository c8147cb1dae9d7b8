package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// RGB color definitions for board cells and text lines
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbHead       = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbBody       = tcell.NewRGBColor(0, 170, 0)     // Normal green
	RgbFruit      = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelp       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbNotice     = tcell.NewRGBColor(255, 165, 0)   // Orange
)

var defaultStyle = tcell.StyleDefault.Background(RgbBackground)

// CellStyle returns the screen style for a cell kind
func CellStyle(k engine.CellKind) tcell.Style {
	switch k {
	case engine.CellHead:
		return defaultStyle.Foreground(RgbHead).Bold(true)
	case engine.CellBody:
		return defaultStyle.Foreground(RgbBody)
	case engine.CellFruit:
		return defaultStyle.Foreground(RgbFruit).Bold(true)
	case engine.CellWall:
		return defaultStyle.Foreground(RgbWall)
	default:
		return defaultStyle
	}
}
