package domain

// Source identifies the origin of a navigation request. Each source carries
// its own triggered-set, hash, overlay and pause policy in the engine.
type Source int

const (
	SourceKeyboard Source = iota
	SourceToc
	SourceMarker
	SourceHash
	SourcePlayback
	SourceProgressBar
)

func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceToc:
		return "toc"
	case SourceMarker:
		return "marker"
	case SourceHash:
		return "hash"
	case SourcePlayback:
		return "playback"
	case SourceProgressBar:
		return "progressBar"
	default:
		return "unknown"
	}
}

// NavigationRequest is the single message type every navigation entry point
// (key press, TOC click, marker click, hash resolution, playback trigger,
// progress-bar scrub) dispatches through the engine.
type NavigationRequest struct {
	// Target is the annotation to move to. Nil for progress-bar scrubs,
	// which carry only a time.
	Target *Annotation

	Source Source

	// TimeMs is the scrub target for SourceProgressBar; ignored when
	// Target is set.
	TimeMs int64

	// PauseOverride, when non-nil, wins over the source's default pause
	// policy.
	PauseOverride *bool
}

// TargetTimeMs returns the playback time the request moves to.
func (r NavigationRequest) TargetTimeMs() int64 {
	if r.Target != nil {
		return r.Target.TimestampMs
	}
	return r.TimeMs
}
