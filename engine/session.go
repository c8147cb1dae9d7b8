package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/constants"
)

// Outcome classifies the result of a tick
type Outcome uint8

const (
	Continuing Outcome = iota
	GameOver
)

// Cause names why a session ended
type Cause uint8

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

// String returns the string representation of a cause
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// TickResult reports what a single tick did
type TickResult struct {
	Outcome Outcome
	Cause   Cause // CauseNone while Continuing
	Head    Point // Head after the move, or the rejected target on collision

	Ate       bool // Fruit consumed this tick
	LeveledUp bool // Delay dropped and level advanced this tick
}

// Over reports whether the session ended on this tick
func (r TickResult) Over() bool {
	return r.Outcome == GameOver
}

// Won reports whether the session ended by filling the board
func (r TickResult) Won() bool {
	return r.Outcome == GameOver && r.Cause == CauseBoardFull
}

// Stats is the scoreboard of a session
type Stats struct {
	Score       int
	Length      int
	Level       int
	FruitsEaten int
	Delay       time.Duration
}

// Option configures a session at creation
type Option func(*sessionOptions)

type sessionOptions struct {
	source   rand.Source
	attempts int
}

// WithSeed seeds the fruit placement generator for reproducible play
func WithSeed(seed uint64) Option {
	return func(o *sessionOptions) {
		o.source = rand.NewSource(seed)
	}
}

// WithSource supplies the fruit placement generator
func WithSource(src rand.Source) Option {
	return func(o *sessionOptions) {
		o.source = src
	}
}

// WithPlacementAttempts overrides the random sample budget before the free-cell scan
func WithPlacementAttempts(n int) Option {
	return func(o *sessionOptions) {
		if n >= 0 {
			o.attempts = n
		}
	}
}

// Session owns and evolves the state of one game. It is not safe for
// concurrent use; the driver ticks and renders from a single goroutine.
type Session struct {
	grid  Grid
	snake *Snake
	dir   Direction
	fruit Point

	score       int
	level       int
	fruitsEaten int
	delay       time.Duration

	over  bool
	cause Cause
	ticks int

	placer fruitPlacer
}

// NewSession validates the grid and lays out a fresh game: snake of
// StartingLength centred and heading right, fruit on a random free cell
func NewSession(grid Grid, opts ...Option) (*Session, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{attempts: constants.FruitPlacementAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	head := Point{X: grid.Width / 2, Y: grid.Height / 2}
	s := &Session{
		grid:   grid,
		snake:  newSnake(head, constants.StartingLength, DirRight),
		dir:    DirRight,
		level:  1,
		delay:  constants.InitialDelay,
		placer: fruitPlacer{rng: rand.New(o.source), attempts: o.attempts},
	}
	s.fruit = s.placer.place(s.grid, s.snake)
	return s, nil
}

// SetDirection changes the heading; the exact reverse of the current heading
// and unknown values are ignored
func (s *Session) SetDirection(d Direction) {
	if !d.Valid() || d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// Tick advances the snake one cell. Checks run in order: wall, self (tail
// included), then the move itself. Collisions end the session without
// touching snake, fruit or stats. Ticking a finished session returns
// ErrSessionOver.
func (s *Session) Tick() (TickResult, error) {
	if s.over {
		return TickResult{Outcome: GameOver, Cause: s.cause, Head: s.snake.Head()}, ErrSessionOver
	}

	next := s.snake.Head().Step(s.dir)

	if !s.grid.Contains(next) {
		return s.end(CauseWall, next), nil
	}
	if s.snake.Contains(next) {
		return s.end(CauseSelf, next), nil
	}

	s.ticks++
	s.snake.push(next)
	res := TickResult{Outcome: Continuing, Head: next}

	if next != s.fruit {
		s.snake.dropTail()
		return res, nil
	}

	// Grow: tail stays put
	res.Ate = true
	s.score += constants.ScorePerFruit
	s.fruitsEaten++
	s.fruit = s.placer.place(s.grid, s.snake)

	if s.fruitsEaten%constants.FruitsPerLevel == 0 && s.delay > constants.MinDelay {
		s.delay = max(s.delay-constants.DelayStep, constants.MinDelay)
		s.level++
		res.LeveledUp = true
	}

	if s.snake.Len() >= s.grid.Cells()-1 {
		s.over = true
		s.cause = CauseBoardFull
		res.Outcome = GameOver
		res.Cause = CauseBoardFull
	}
	return res, nil
}

func (s *Session) end(cause Cause, target Point) TickResult {
	s.over = true
	s.cause = cause
	return TickResult{Outcome: GameOver, Cause: cause, Head: target}
}

// PlaceFruit moves the fruit to p, which must be a free in-bounds cell
func (s *Session) PlaceFruit(p Point) error {
	if !s.grid.Contains(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	if s.snake.Contains(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOccupied, p.X, p.Y)
	}
	s.fruit = p
	return nil
}

// Grid returns the board dimensions
func (s *Session) Grid() Grid { return s.grid }

// Head returns the snake's leading segment
func (s *Session) Head() Point { return s.snake.Head() }

// Body returns a head-first copy of every segment
func (s *Session) Body() []Point { return s.snake.Segments() }

// Fruit returns the current fruit cell
func (s *Session) Fruit() Point { return s.fruit }

// Direction returns the heading applied on the next tick
func (s *Session) Direction() Direction { return s.dir }

// Over reports whether the session has ended
func (s *Session) Over() bool { return s.over }

// Cause returns why the session ended, CauseNone while running
func (s *Session) Cause() Cause { return s.cause }

// Ticks returns the number of successful moves
func (s *Session) Ticks() int { return s.ticks }

// Stats returns the current scoreboard
func (s *Session) Stats() Stats {
	return Stats{
		Score:       s.score,
		Length:      s.snake.Len(),
		Level:       s.level,
		FruitsEaten: s.fruitsEaten,
		Delay:       s.delay,
	}
}
