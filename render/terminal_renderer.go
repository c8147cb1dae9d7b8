package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// ScreenSink draws frames onto a tcell screen, board anchored top-left with
// status, help and notice lines below it
type ScreenSink struct {
	screen    tcell.Screen
	noticeRow int
}

// NewScreenSink wraps an initialised screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	screen.HideCursor()
	return &ScreenSink{screen: screen}
}

// Present implements Sink
func (s *ScreenSink) Present(f engine.Frame) error {
	s.screen.Clear()

	for c := range f.Cells() {
		s.screen.SetContent(c.X+1, c.Y+1, Glyph(c.Kind), nil, CellStyle(c.Kind))
	}

	statusY := f.Grid.Height + 2
	s.drawText(0, statusY, StatusLine(f.Stats), defaultStyle.Foreground(RgbStatusBar))
	s.drawText(0, statusY+1, constants.HelpLine, defaultStyle.Foreground(RgbHelp))
	s.noticeRow = statusY + 2

	s.screen.Show()
	return nil
}

// Notice implements Sink
func (s *ScreenSink) Notice(msg string) error {
	width, _ := s.screen.Size()
	style := defaultStyle.Foreground(RgbNotice)
	for x := 0; x < width; x++ {
		s.screen.SetContent(x, s.noticeRow, ' ', nil, style)
	}
	s.drawText(0, s.noticeRow, msg, style)
	s.screen.Show()
	return nil
}

func (s *ScreenSink) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
