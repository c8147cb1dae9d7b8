// Package game drives a session: it polls input, ticks the engine, renders
// and paces itself with the delay the engine reports.
package game

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// Sounds plays effects for gameplay events
type Sounds interface {
	Play(st audio.SoundType) bool
}

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// Summary is the outcome of a finished run
type Summary struct {
	Stats engine.Stats
	Cause engine.Cause // CauseNone when the player quit
	Quit  bool
	Ticks int
}

// Won reports whether the run ended by filling the board
func (s Summary) Won() bool {
	return s.Cause == engine.CauseBoardFull
}

// WriteTo prints the end-of-game report
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	title := constants.SummaryGameOver
	if s.Won() {
		title = constants.SummaryBoardFull
	}
	n, err := fmt.Fprintf(w, "%s\n"+constants.SummaryScore+"\n"+constants.SummaryLength+"\n"+constants.SummaryLevel+"\n",
		title, s.Stats.Score, s.Stats.Length, s.Stats.Level)
	return int64(n), err
}

// Runner owns one session for the duration of a game
type Runner struct {
	Session *engine.Session
	Source  input.Source
	Sink    render.Sink
	Sounds  Sounds      // Optional
	Logger  *log.Logger // Optional
	Sleep   Sleeper     // Defaults to a context-aware timer
}

// Run plays the session to completion. Game over and quit both return a nil
// error; only sink failures and context cancellation are errors.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.Sleep == nil {
		r.Sleep = sleepContext
	}
	if r.Logger == nil {
		r.Logger = log.New(io.Discard, "", 0)
	}

	g := r.Session.Grid()
	r.Logger.Printf("session start: grid %dx%d", g.Width, g.Height)

	if err := r.present(); err != nil {
		return r.summary(false), err
	}
	if err := r.Sink.Notice(constants.StartPrompt); err != nil {
		return r.summary(false), fmt.Errorf("notice: %w", err)
	}
	switch in := r.Source.Wait(ctx); {
	case ctx.Err() != nil:
		return r.summary(false), ctx.Err()
	case in.Type == input.IntentQuit:
		r.Logger.Printf("quit before start")
		return r.summary(true), nil
	}

	for {
		switch in := r.Source.Poll(); in.Type {
		case input.IntentQuit:
			r.Logger.Printf("quit at tick %d", r.Session.Ticks())
			return r.summary(true), nil
		case input.IntentPauseToggle:
			quit, err := r.pause(ctx)
			if err != nil {
				return r.summary(false), err
			}
			if quit {
				return r.summary(true), nil
			}
		case input.IntentMove:
			r.Session.SetDirection(in.Direction)
		}

		res, err := r.Session.Tick()
		if err != nil {
			return r.summary(false), fmt.Errorf("tick: %w", err)
		}
		r.effects(res)

		if res.Over() {
			stats := r.Session.Stats()
			r.Logger.Printf("game over: cause=%s score=%d length=%d level=%d",
				res.Cause, stats.Score, stats.Length, stats.Level)
			return r.summary(false), nil
		}

		if err := r.present(); err != nil {
			return r.summary(false), err
		}
		if err := r.Sleep(ctx, r.Session.Stats().Delay); err != nil {
			return r.summary(false), err
		}
	}
}

// pause blocks until the toggle is pressed again; other keys are ignored
func (r *Runner) pause(ctx context.Context) (quit bool, err error) {
	r.Logger.Printf("paused at tick %d", r.Session.Ticks())
	if err := r.Sink.Notice(constants.PausePrompt); err != nil {
		return false, fmt.Errorf("notice: %w", err)
	}

	for {
		in := r.Source.Wait(ctx)
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		switch in.Type {
		case input.IntentPauseToggle:
			r.Logger.Printf("resumed")
			return false, nil
		case input.IntentQuit:
			r.Logger.Printf("quit while paused")
			return true, nil
		}
	}
}

func (r *Runner) effects(res engine.TickResult) {
	if res.LeveledUp {
		r.Logger.Printf("level up: level=%d delay=%v", r.Session.Stats().Level, r.Session.Stats().Delay)
	}
	if r.Sounds == nil {
		return
	}
	switch {
	case res.Over() && !res.Won():
		r.Sounds.Play(audio.SoundCrash)
	case res.LeveledUp:
		r.Sounds.Play(audio.SoundLevelUp)
	case res.Ate:
		r.Sounds.Play(audio.SoundEat)
	}
}

func (r *Runner) present() error {
	if err := r.Sink.Present(r.Session.Frame()); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

func (r *Runner) summary(quit bool) Summary {
	return Summary{
		Stats: r.Session.Stats(),
		Cause: r.Session.Cause(),
		Quit:  quit,
		Ticks: r.Session.Ticks(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
