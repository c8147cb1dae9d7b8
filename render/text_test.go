package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

func testFrame(t *testing.T) engine.Frame {
	t.Helper()
	s, err := engine.NewSession(engine.Grid{Width: 10, Height: 5}, engine.WithSeed(1))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if err := s.PlaceFruit(engine.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("PlaceFruit failed: %v", err)
	}
	return s.Frame()
}

// TestTextSinkLayout verifies the fixed-width board, status and help lines
func TestTextSinkLayout(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, false)

	if err := sink.Present(testFrame(t)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	want := strings.Join([]string{
		"############",
		"#F         #",
		"#          #",
		"#  oooO    #",
		"#          #",
		"#          #",
		"############",
		"Score: 0   Length: 4   Level: 1   Delay: 200 ms",
		"Controls: W/A/S/D to move | p = pause | q = quit",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("Unexpected frame text.\nExpected:\n%s\nGot:\n%s", want, got)
	}
}

// TestTextSinkRaw verifies the clear prefix and CRLF endings in raw mode
func TestTextSinkRaw(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, true)

	if err := sink.Present(testFrame(t)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, constants.ClearSequence) {
		t.Error("Expected raw frame to start with the clear sequence")
	}
	if strings.Count(out, "\r\n") != 9 {
		t.Errorf("Expected 9 CRLF line endings, got %d", strings.Count(out, "\r\n"))
	}

	buf.Reset()
	if err := sink.Notice(constants.PausePrompt); err != nil {
		t.Fatalf("Notice failed: %v", err)
	}
	if buf.String() != constants.PausePrompt+"\r\n" {
		t.Errorf("Unexpected notice output %q", buf.String())
	}
}

// TestStatusLineMilliseconds verifies delay is printed as whole milliseconds
func TestStatusLineMilliseconds(t *testing.T) {
	got := StatusLine(engine.Stats{Score: 120, Length: 16, Level: 5, Delay: 160 * time.Millisecond})
	want := "Score: 120   Length: 16   Level: 5   Delay: 160 ms"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestGlyphs(t *testing.T) {
	tests := map[engine.CellKind]rune{
		engine.CellEmpty: ' ',
		engine.CellHead:  'O',
		engine.CellBody:  'o',
		engine.CellFruit: 'F',
		engine.CellWall:  '#',
	}
	for kind, want := range tests {
		if got := Glyph(kind); got != want {
			t.Errorf("Glyph(%v): expected %q, got %q", kind, want, got)
		}
	}
}
