package config

import "time"

// Render timing.
const (
	// TickInterval is the live status line refresh period.
	TickInterval = 100 * time.Millisecond
)

// Display settings.
const (
	// EntrySeparator joins timer entries on the multi-timer status line.
	EntrySeparator = " | "

	// TruncationSuffix appended to a status line wider than the terminal.
	TruncationSuffix = "…"
)

// Application settings.
const (
	AppName = "stopwatch"
)
