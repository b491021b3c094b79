package constants

import "time"

// Terminal Projection (world units per cell)
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// HUDRows is the number of rows reserved below the viewport (HUD + status)
	HUDRows = 2
)

// Input
const (
	// KeyHoldWindow is how long a terminal key press counts as held without a repeat
	KeyHoldWindow = 150 * time.Millisecond
)

// Remote HUD
const (
	HUDBroadcastInterval = 100 * time.Millisecond
	HUDClientBuffer      = 16
	HUDPingInterval      = 30 * time.Second
	HUDWriteTimeout      = 5 * time.Second
	HUDReadTimeout       = 60 * time.Second
)
