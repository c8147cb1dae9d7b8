package main

import (
	"strconv"

	"github.com/lixenwraith/vi-snake/engine"
)

// resolveGrid reads WIDTH HEIGHT from the positional arguments. Anything
// missing, unparsable or outside the playable limits falls back to the
// default board without complaint.
func resolveGrid(args []string) engine.Grid {
	if len(args) < 2 {
		return engine.DefaultGrid()
	}
	w, err := strconv.Atoi(args[0])
	if err != nil {
		return engine.DefaultGrid()
	}
	h, err := strconv.Atoi(args[1])
	if err != nil {
		return engine.DefaultGrid()
	}
	g := engine.Grid{Width: w, Height: h}
	if g.Validate() != nil {
		return engine.DefaultGrid()
	}
	return g
}
