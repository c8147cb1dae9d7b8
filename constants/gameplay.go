package constants

import "time"

// Grid Limits
const (
	// DefaultWidth is the board width used when no valid override is given
	DefaultWidth = 30

	// DefaultHeight is the board height used when no valid override is given
	DefaultHeight = 20

	// MinWidth is the narrowest playable board
	MinWidth = 10

	// MinHeight is the shortest playable board
	MinHeight = 5

	// MaxGridCells caps width*height; body storage grows dynamically but the cap stays as a configuration limit
	MaxGridCells = 10000
)

// Snake Mechanics
const (
	// StartingLength is the number of segments a new snake spawns with
	StartingLength = 4

	// ScorePerFruit is awarded for each fruit eaten
	ScorePerFruit = 10

	// FruitsPerLevel is the number of fruits between speed-ups
	FruitsPerLevel = 3

	// FruitPlacementAttempts is the maximum number of random samples before falling back to a free-cell scan
	FruitPlacementAttempts = 10000
)

// Difficulty Progression
const (
	// InitialDelay is the tick interval at level 1
	InitialDelay = 200 * time.Millisecond

	// MinDelay is the floor below which the tick interval never drops
	MinDelay = 50 * time.Millisecond

	// DelayStep is subtracted from the tick interval on every level up
	DelayStep = 10 * time.Millisecond
)
