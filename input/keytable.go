package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		// Raw mode swallows SIGINT, so Ctrl+C must quit explicitly
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'w': Move(engine.DirUp),
			'a': Move(engine.DirLeft),
			's': Move(engine.DirDown),
			'd': Move(engine.DirRight),
			'p': {Type: IntentPauseToggle},
			'q': {Type: IntentQuit},
		},
	}
}

// Rune resolves a typed character; unbound characters are IntentOther
func (kt *KeyTable) Rune(r rune) Intent {
	if in, ok := kt.Runes[unicode.ToLower(r)]; ok {
		return in
	}
	return Intent{Type: IntentOther}
}

// Key resolves a tcell key event
func (kt *KeyTable) Key(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Rune(ev.Rune())
	}
	if in, ok := kt.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{Type: IntentOther}
}

var defaultTable = DefaultKeyTable()

// FromRune maps a character with the default bindings
func FromRune(r rune) Intent {
	return defaultTable.Rune(r)
}
