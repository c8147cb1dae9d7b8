package render

import (
	"io"
	"strings"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// TextSink writes frames as plain fixed-width text
type TextSink struct {
	w       io.Writer
	clear   bool
	newline string
	sb      strings.Builder
}

// NewTextSink writes to w. In raw mode each frame starts with a clear-screen
// sequence and lines end in CRLF, since raw terminals do not translate \n.
func NewTextSink(w io.Writer, raw bool) *TextSink {
	ts := &TextSink{w: w, newline: "\n"}
	if raw {
		ts.clear = true
		ts.newline = "\r\n"
	}
	return ts
}

// Present implements Sink
func (ts *TextSink) Present(f engine.Frame) error {
	ts.sb.Reset()
	if ts.clear {
		ts.sb.WriteString(constants.ClearSequence)
	}

	for _, row := range f.Rows() {
		for c := range row {
			ts.sb.WriteRune(Glyph(c.Kind))
		}
		ts.sb.WriteString(ts.newline)
	}

	ts.sb.WriteString(StatusLine(f.Stats))
	ts.sb.WriteString(ts.newline)
	ts.sb.WriteString(constants.HelpLine)
	ts.sb.WriteString(ts.newline)

	_, err := io.WriteString(ts.w, ts.sb.String())
	return err
}

// Notice implements Sink
func (ts *TextSink) Notice(msg string) error {
	_, err := io.WriteString(ts.w, msg+ts.newline)
	return err
}
