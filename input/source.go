package input

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
)

// Source delivers player intents to the driver loop
type Source interface {
	// Poll returns the next pending intent without blocking, IntentNone when idle
	Poll() Intent
	// Wait blocks until a key arrives or ctx is done, returning IntentNone on cancellation
	Wait(ctx context.Context) Intent
}

// TerminalSource reads key events from a tcell screen. A pump goroutine
// forwards PollEvent results into a buffered channel; non-key events are
// dropped. Once the screen is finalised every call returns IntentQuit.
type TerminalSource struct {
	screen tcell.Screen
	table  *KeyTable
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewTerminalSource starts pumping events from an initialised screen
func NewTerminalSource(screen tcell.Screen) *TerminalSource {
	ts := &TerminalSource{
		screen: screen,
		table:  DefaultKeyTable(),
		events: make(chan tcell.Event, constants.InputBufferSize),
		done:   make(chan struct{}),
	}
	go ts.pump()
	return ts
}

func (ts *TerminalSource) pump() {
	defer close(ts.events)
	for {
		ev := ts.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case ts.events <- ev:
		case <-ts.done:
			return
		}
	}
}

// Poll implements Source
func (ts *TerminalSource) Poll() Intent {
	for {
		select {
		case ev, ok := <-ts.events:
			if !ok {
				return Intent{Type: IntentQuit}
			}
			if in := ts.translate(ev); in.Pressed() {
				return in
			}
		default:
			return Intent{}
		}
	}
}

// Wait implements Source
func (ts *TerminalSource) Wait(ctx context.Context) Intent {
	for {
		select {
		case ev, ok := <-ts.events:
			if !ok {
				return Intent{Type: IntentQuit}
			}
			if in := ts.translate(ev); in.Pressed() {
				return in
			}
		case <-ctx.Done():
			return Intent{}
		}
	}
}

// Close stops forwarding events; the pump exits on its next event or when the screen is finalised
func (ts *TerminalSource) Close() {
	ts.once.Do(func() { close(ts.done) })
}

func (ts *TerminalSource) translate(ev tcell.Event) Intent {
	if key, ok := ev.(*tcell.EventKey); ok {
		return ts.table.Key(key)
	}
	return Intent{}
}
