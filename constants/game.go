package constants

// Driver Loop
const (
	// InputBufferSize is the capacity of the terminal event channel
	InputBufferSize = 100
)

// Log File
const (
	// LogDir is the directory debug logs are written to
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the debug log at startup
	MaxLogSize = 10 * 1024 * 1024
)

// LogRotateSuffix is appended to the rotated debug log
const LogRotateSuffix = ".old"
