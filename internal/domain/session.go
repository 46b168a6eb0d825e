package domain

import "time"

// Session is the resumable playback state for one document: where the cursor
// was and which annotations have already fired.
type Session struct {
	DocumentPath string
	PositionMs   int64
	Triggered    []string
	UpdatedAt    time.Time
}
