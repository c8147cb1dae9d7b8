package input

import (
	"bufio"
	"context"
	"io"

	"github.com/lixenwraith/vi-snake/constants"
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// ReaderSource decodes key presses from a byte stream, typically stdin in raw
// mode. End of stream reads as IntentQuit.
type ReaderSource struct {
	table   *KeyTable
	intents chan Intent
}

// NewReaderSource starts decoding r in the background
func NewReaderSource(r io.Reader) *ReaderSource {
	rs := &ReaderSource{
		table:   DefaultKeyTable(),
		intents: make(chan Intent, constants.InputBufferSize),
	}
	go rs.pump(bufio.NewReader(r))
	return rs
}

func (rs *ReaderSource) pump(br *bufio.Reader) {
	defer close(rs.intents)
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return
		}
		rs.intents <- rs.decode(r, br)
	}
}

// decode treats a lone Esc as quit; Esc followed by already-buffered bytes is
// an escape sequence (arrow keys and friends) and is swallowed whole
func (rs *ReaderSource) decode(r rune, br *bufio.Reader) Intent {
	switch r {
	case keyCtrlC:
		return Intent{Type: IntentQuit}
	case keyEsc:
		if br.Buffered() == 0 {
			return Intent{Type: IntentQuit}
		}
		next, _ := br.Peek(1)
		if next[0] == '[' || next[0] == 'O' {
			br.ReadByte()
			for br.Buffered() > 0 {
				b, _ := br.ReadByte()
				if b >= 0x40 && b <= 0x7e {
					break
				}
			}
		}
		return Intent{Type: IntentOther}
	}
	return rs.table.Rune(r)
}

// Poll implements Source
func (rs *ReaderSource) Poll() Intent {
	select {
	case in, ok := <-rs.intents:
		if !ok {
			return Intent{Type: IntentQuit}
		}
		return in
	default:
		return Intent{}
	}
}

// Wait implements Source
func (rs *ReaderSource) Wait(ctx context.Context) Intent {
	select {
	case in, ok := <-rs.intents:
		if !ok {
			return Intent{Type: IntentQuit}
		}
		return in
	case <-ctx.Done():
		return Intent{}
	}
}
