package playback

import (
	"sync"
	"time"
)

// Clock is a wall-clock driven playback source: a stand-in for the replay
// renderer that lets annotation timing be previewed without the recording.
// While playing, the position advances in real time from the last anchor.
type Clock struct {
	mu       sync.Mutex
	playing  bool
	anchorMs int64     // position at the moment of the last play/pause
	anchorAt time.Time // wall time of the last play
	now      func() time.Time
}

// NewClock creates a paused clock at position 0.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// CurrentTime returns the playback position in milliseconds.
func (c *Clock) CurrentTime() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

func (c *Clock) positionLocked() int64 {
	if !c.playing {
		return c.anchorMs
	}
	return c.anchorMs + c.now().Sub(c.anchorAt).Milliseconds()
}

// IsPlaying reports whether the clock is advancing.
func (c *Clock) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Play starts (or keeps) the clock running, seeking first when atMs >= 0.
func (c *Clock) Play(atMs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if atMs >= 0 {
		c.anchorMs = atMs
	} else {
		c.anchorMs = c.positionLocked()
	}
	c.anchorAt = c.now()
	c.playing = true
}

// Pause freezes the clock, seeking first when atMs >= 0.
func (c *Clock) Pause(atMs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if atMs >= 0 {
		c.anchorMs = atMs
	} else {
		c.anchorMs = c.positionLocked()
	}
	c.playing = false
}
