package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	plainFlag = flag.Bool("plain", false, "Draw plain text frames on stdout instead of a full-screen view")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	seedFlag  = flag.Uint64("seed", 0, "Fruit placement seed (0 picks one from the clock)")
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/vi-snake.log")
)

// restore puts the terminal back after a crash; set once the terminal is taken
var restore = func() {}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			restore()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [WIDTH HEIGHT]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	grid := resolveGrid(flag.Args())
	var opts []engine.Option
	if *seedFlag != 0 {
		opts = append(opts, engine.WithSeed(*seedFlag))
	}
	session, err := engine.NewSession(grid, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}

	runner := &game.Runner{
		Session: session,
		Logger:  log.Default(),
	}

	if !*muteFlag {
		player := audio.NewPlayer(audio.LoadConfig())
		if err := player.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			runner.Sounds = player
			defer player.Close()
		}
	}

	var summary game.Summary
	if *plainFlag {
		summary, err = runPlain(runner)
	} else {
		summary, err = runScreen(runner)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game aborted: %v\n", err)
		os.Exit(1)
	}

	summary.WriteTo(os.Stdout)
}

// runScreen plays on a full tcell screen
func runScreen(r *game.Runner) (game.Summary, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Summary{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Summary{}, fmt.Errorf("init screen: %w", err)
	}
	restore = screen.Fini
	defer screen.Fini()

	source := input.NewTerminalSource(screen)
	defer source.Close()

	r.Source = source
	r.Sink = render.NewScreenSink(screen)
	return r.Run(context.Background())
}

// runPlain redraws text frames on stdout and reads keys from raw stdin
func runPlain(r *game.Runner) (game.Summary, error) {
	fd := int(os.Stdin.Fd())
	raw := term.IsTerminal(fd)
	if raw {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return game.Summary{}, fmt.Errorf("raw stdin: %w", err)
		}
		restore = func() { term.Restore(fd, state) }
		defer term.Restore(fd, state)
	}

	r.Source = input.NewReaderSource(os.Stdin)
	r.Sink = render.NewTextSink(os.Stdout, raw)
	return r.Run(context.Background())
}
