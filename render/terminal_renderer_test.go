package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
)

func readRow(screen tcell.Screen, y, n int) string {
	runes := make([]rune, n)
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		runes[x] = r
	}
	return string(runes)
}

// TestScreenSinkDraw verifies board glyphs and text lines land on the screen
func TestScreenSinkDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	sink := NewScreenSink(screen)
	if err := sink.Present(testFrame(t)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	if got := readRow(screen, 0, 12); got != "############" {
		t.Errorf("Expected top border, got %q", got)
	}
	if got := readRow(screen, 1, 12); got != "#F         #" {
		t.Errorf("Expected fruit row, got %q", got)
	}
	if got := readRow(screen, 3, 12); got != "#  oooO    #" {
		t.Errorf("Expected snake row, got %q", got)
	}
	if got := readRow(screen, 6, 12); got != "############" {
		t.Errorf("Expected bottom border, got %q", got)
	}

	status := "Score: 0   Length: 4   Level: 1   Delay: 200 ms"
	if got := readRow(screen, 7, len(status)); got != status {
		t.Errorf("Expected status %q, got %q", status, got)
	}
	if got := readRow(screen, 8, len(constants.HelpLine)); got != constants.HelpLine {
		t.Errorf("Expected help %q, got %q", constants.HelpLine, got)
	}

	if err := sink.Notice(constants.PausePrompt); err != nil {
		t.Fatalf("Notice failed: %v", err)
	}
	if got := readRow(screen, 9, len(constants.PausePrompt)); got != constants.PausePrompt {
		t.Errorf("Expected notice %q, got %q", constants.PausePrompt, got)
	}
}
