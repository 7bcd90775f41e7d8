package config

import "time"

// Layout constants
const (
	// Lines below the page reserved for status and short help
	FooterHeight = 1

	// Used when the terminal size cannot be read
	FallbackWidth  = 80
	FallbackHeight = 24

	// Help dialog
	HelpDialogWidth   = 56
	HelpDialogPadding = 1
)

// Status line timing
const (
	StatusTTL          = 3 * time.Second
	StatusTickInterval = time.Second
)
