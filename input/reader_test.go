package input

import (
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/engine"
)

// TestReaderSourceDecodes verifies bytes, escape sequences and end of stream
func TestReaderSourceDecodes(t *testing.T) {
	src := NewReaderSource(strings.NewReader("wQx\x1b[AD\x03"))

	want := []Intent{
		Move(engine.DirUp),
		{Type: IntentQuit},
		{Type: IntentOther},
		{Type: IntentOther}, // Up arrow swallowed as one key
		Move(engine.DirRight),
		{Type: IntentQuit},
		{Type: IntentQuit}, // End of stream
		{Type: IntentQuit},
	}

	for i, w := range want {
		if got := waitFor(t, src); got != w {
			t.Errorf("Intent %d: expected %v, got %v", i, w, got)
		}
	}
}

// TestReaderSourceLoneEscape verifies a bare Esc quits
func TestReaderSourceLoneEscape(t *testing.T) {
	src := NewReaderSource(strings.NewReader("\x1b"))

	if got := waitFor(t, src); got.Type != IntentQuit {
		t.Errorf("Expected quit, got %v", got)
	}
}
