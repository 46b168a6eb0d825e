package ports

// PlaybackClock is the engine's view of the playback source. The engine only
// calls these; it never inspects internal replay state.
type PlaybackClock interface {
	// CurrentTime returns the playback position in milliseconds.
	CurrentTime() int64

	// IsPlaying reports whether the source is advancing.
	IsPlaying() bool

	// Play resumes playback, seeking to atMs first when atMs >= 0.
	Play(atMs int64)

	// Pause stops playback, seeking to atMs first when atMs >= 0.
	Pause(atMs int64)
}
