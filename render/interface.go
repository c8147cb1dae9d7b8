package render

import "github.com/lixenwraith/vi-snake/engine"

// Sink displays frames produced by the engine
type Sink interface {
	// Present draws a full frame with its status and help lines
	Present(f engine.Frame) error
	// Notice shows a one-line message below the last frame
	Notice(msg string) error
}
