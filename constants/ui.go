package constants

// Board Glyphs
const (
	GlyphWall  = '#'
	GlyphHead  = 'O'
	GlyphBody  = 'o'
	GlyphFruit = 'F'
	GlyphEmpty = ' '
)

// Text Lines
const (
	// StatusFormat renders score, length, level and delay in milliseconds
	StatusFormat = "Score: %d   Length: %d   Level: %d   Delay: %d ms"

	// HelpLine lists the controls below the status line
	HelpLine = "Controls: W/A/S/D to move | p = pause | q = quit"

	// StartPrompt is shown before the first tick
	StartPrompt = "Press any key to start... (W/A/S/D to control)."

	// PausePrompt is shown while the driver is paused
	PausePrompt = "Paused. Press 'p' again to resume."

	// ClearSequence clears the terminal and homes the cursor
	ClearSequence = "\x1b[2J\x1b[H"
)

// Summary Text
const (
	SummaryGameOver  = "Game Over!"
	SummaryBoardFull = "You filled the board!"
	SummaryScore     = "Final score: %d"
	SummaryLength    = "Final length: %d"
	SummaryLevel     = "Level reached: %d"
)
