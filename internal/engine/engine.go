package engine

import (
	"sync"
	"time"

	"rehearse/internal/domain"
	"rehearse/internal/ports"
)

// Defaults for the trigger predicate and the clock polling cadence.
const (
	DefaultTriggerThresholdMs      = 100
	DefaultBackwardSeekThresholdMs = 1000
	DefaultTickInterval            = 100 * time.Millisecond
)

// Snapshot is the engine state exposed for UI rendering after every
// Advance/Navigate call.
type Snapshot struct {
	ActiveAnnotationID string // "" when none
	IsPlaying          bool
	CurrentTimeMs      int64
}

// Options tune an Engine. Zero values select the defaults.
type Options struct {
	TriggerThresholdMs      int64
	BackwardSeekThresholdMs int64
	TickInterval            time.Duration

	// OnState, when set, is called with the new snapshot after every
	// state change. It runs with the engine lock held and must not call
	// back into the engine.
	OnState func(Snapshot)
}

// Engine is the navigation/trigger state machine. It owns the triggered set,
// the last observed time and the active annotation id, and is the single
// canonical entry point for every navigation source.
//
// All state lives behind one mutex: timer ticks and discrete UI events may
// interleave on arbitrary goroutines, and Advance and Navigate must each run
// to completion without another call getting in between.
type Engine struct {
	mu sync.Mutex

	timeline *domain.Timeline
	clock    ports.PlaybackClock
	overlay  ports.OverlayPresenter
	hash     *HashSync

	triggered      map[string]struct{}
	lastObservedMs int64
	activeID       string
	playing        bool
	overlayVisible bool

	hashReady bool
	hydrated  bool

	triggerMs      int64
	backwardSeekMs int64
	tickInterval   time.Duration
	onState        func(Snapshot)

	ticker      *time.Ticker
	done        chan struct{}
	cancelWatch func()
	closed      bool
}

// New builds an engine for one playback session. Any collaborator may be
// nil; the engine then treats the corresponding side effects as no-ops
// rather than errors. One engine instance is scoped to one session.
func New(tl *domain.Timeline, clock ports.PlaybackClock, overlay ports.OverlayPresenter, fragment ports.FragmentChannel, opts Options) *Engine {
	e := &Engine{
		timeline:       tl,
		clock:          clock,
		overlay:        overlay,
		triggered:      make(map[string]struct{}),
		triggerMs:      opts.TriggerThresholdMs,
		backwardSeekMs: opts.BackwardSeekThresholdMs,
		tickInterval:   opts.TickInterval,
		onState:        opts.OnState,
	}
	if e.triggerMs <= 0 {
		e.triggerMs = DefaultTriggerThresholdMs
	}
	if e.backwardSeekMs <= 0 {
		e.backwardSeekMs = DefaultBackwardSeekThresholdMs
	}
	if e.tickInterval <= 0 {
		e.tickInterval = DefaultTickInterval
	}
	if fragment != nil {
		e.hash = NewHashSync(fragment)
		e.cancelWatch = fragment.Watch(e.onFragmentChange)
	}
	return e
}

// Start begins polling the playback clock on the tick interval. Safe to call
// once; subsequent calls are no-ops.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.closed || e.ticker != nil {
		e.mu.Unlock()
		return
	}
	e.ticker = time.NewTicker(e.tickInterval)
	e.done = make(chan struct{})
	ticker, done := e.ticker, e.done
	e.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				e.mu.Lock()
				clock := e.clock
				e.mu.Unlock()
				if clock == nil {
					continue
				}
				e.Advance(clock.CurrentTime())
			}
		}
	}()
}

// Close stops the timer and deregisters the fragment listener before the
// state is discarded. No engine callback fires after Close begins.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.ticker != nil {
		e.ticker.Stop()
	}
	done := e.done
	cancel := e.cancelWatch
	e.done = nil
	e.cancelWatch = nil
	e.mu.Unlock()

	if done != nil {
		close(done)
	}
	if cancel != nil {
		cancel()
	}
}

// Advance processes one clock tick. A jump backward past the backward-seek
// threshold clears the triggered set; ticks while paused only refresh the
// last observed time and never fire triggers.
func (e *Engine) Advance(timeMs int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	if timeMs < e.lastObservedMs-e.backwardSeekMs {
		e.triggered = make(map[string]struct{})
	}
	e.lastObservedMs = timeMs

	if !e.playing {
		return
	}

	for _, ann := range e.timeline.Ordered() {
		dist := timeMs - ann.TimestampMs
		if dist < 0 {
			dist = -dist
		}
		if dist >= e.triggerMs {
			continue
		}
		if _, seen := e.triggered[ann.ID]; seen || ann.ID == e.activeID {
			continue
		}
		e.navigateLocked(domain.NavigationRequest{Target: ann, Source: domain.SourcePlayback})
		return
	}
}

// Navigate dispatches one navigation request through the source policy
// table. This is the only path that mutates the triggered set, the cursor,
// the fragment and the overlay.
func (e *Engine) Navigate(req domain.NavigationRequest) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.navigateLocked(req)
}

func (e *Engine) navigateLocked(req domain.NavigationRequest) {
	pol := policyFor(req.Source)

	switch pol.set {
	case setReplace:
		e.triggered = make(map[string]struct{})
		if req.Target != nil {
			e.triggered[req.Target.ID] = struct{}{}
		}
	case setAdditive:
		if req.Target != nil {
			e.triggered[req.Target.ID] = struct{}{}
		}
	case setBackfill:
		if req.Target != nil {
			e.triggered[req.Target.ID] = struct{}{}
			for _, ann := range e.timeline.Ordered() {
				if ann.TimestampMs <= req.Target.TimestampMs {
					e.triggered[ann.ID] = struct{}{}
				}
			}
		}
	case setTrimFuture:
		for _, ann := range e.timeline.Ordered() {
			if ann.TimestampMs > req.TimeMs {
				delete(e.triggered, ann.ID)
			}
		}
	}

	// The jump itself must not read as a backward seek on the next tick.
	at := req.TargetTimeMs()
	e.lastObservedMs = at

	if pol.updateHash && req.Target != nil && e.hash != nil {
		e.hash.Sync(req.Target.ID)
	}

	if pol.overlayAllowed && req.Target != nil && req.Target.HasScript() {
		e.hideOverlayLocked()
		if e.overlay != nil {
			e.overlay.Show(req.Target)
			e.overlayVisible = true
		}
	} else {
		e.hideOverlayLocked()
	}

	if req.Target != nil {
		e.activeID = req.Target.ID
	} else {
		e.activeID = ""
	}

	pause := false
	switch pol.pause {
	case pauseAlways:
		pause = true
	case pauseNever:
		pause = false
	case pauseAutopause:
		pause = req.Target == nil || req.Target.Autopause == nil || *req.Target.Autopause
	}
	if req.PauseOverride != nil {
		pause = *req.PauseOverride
	}

	if pause {
		e.playing = false
		if e.clock != nil {
			e.clock.Pause(at)
		}
	} else if e.playing {
		if e.clock != nil {
			e.clock.Play(at)
		}
	} else if e.clock != nil {
		e.clock.Pause(at)
	}

	e.notifyLocked()
}

// Play resumes playback. Resuming always dismisses a visible overlay.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.playing = true
	e.hideOverlayLocked()
	if e.clock != nil {
		e.clock.Play(-1)
	}
	e.notifyLocked()
}

// Pause stops playback in place. Pausing does not touch the overlay.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.playing = false
	if e.clock != nil {
		e.clock.Pause(-1)
	}
	e.notifyLocked()
}

// TogglePlayPause flips the play state.
func (e *Engine) TogglePlayPause() {
	e.mu.Lock()
	playing := e.playing
	e.mu.Unlock()
	if playing {
		e.Pause()
	} else {
		e.Play()
	}
}

// Ready tells the engine its surroundings can render, unlocking hash-source
// navigation. The initial fragment lookup happens here, at most once, so a
// stale fragment cannot reapply after the user has navigated elsewhere.
func (e *Engine) Ready() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.hashReady = true
	if e.hydrated || e.hash == nil {
		return
	}
	e.hydrated = true
	if frag, ok := e.hash.Read(); ok {
		e.resolveFragmentLocked(frag)
	}
}

func (e *Engine) onFragmentChange(frag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || !e.hashReady {
		return
	}
	e.resolveFragmentLocked(frag)
}

// resolveFragmentLocked maps a fragment to an annotation. An empty or
// unrecognized fragment is a silent no-op.
func (e *Engine) resolveFragmentLocked(frag string) {
	if frag == "" {
		return
	}
	ann := e.timeline.AnnotationByID(frag)
	if ann == nil {
		return
	}
	e.navigateLocked(domain.NavigationRequest{Target: ann, Source: domain.SourceHash})
}

// Snapshot returns the state exposed for UI rendering.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	now := e.lastObservedMs
	if e.clock != nil {
		now = e.clock.CurrentTime()
	}
	return Snapshot{
		ActiveAnnotationID: e.activeID,
		IsPlaying:          e.playing,
		CurrentTimeMs:      now,
	}
}

func (e *Engine) notifyLocked() {
	if e.onState != nil {
		e.onState(e.snapshotLocked())
	}
}

func (e *Engine) hideOverlayLocked() {
	if !e.overlayVisible {
		return
	}
	e.overlayVisible = false
	if e.overlay != nil {
		e.overlay.Hide()
	}
}

// Timeline returns the timeline the engine is scanning.
func (e *Engine) Timeline() *domain.Timeline {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeline
}

// SetTimeline swaps the timeline after a document reload, keeping triggered
// ids that still exist and dropping a vanished active annotation.
func (e *Engine) SetTimeline(tl *domain.Timeline) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	kept := make(map[string]struct{}, len(e.triggered))
	for id := range e.triggered {
		if tl.AnnotationByID(id) != nil {
			kept[id] = struct{}{}
		}
	}
	e.timeline = tl
	e.triggered = kept
	if e.activeID != "" && tl.AnnotationByID(e.activeID) == nil {
		e.activeID = ""
		e.hideOverlayLocked()
	}
}

// TriggeredIDs returns the ids that have fired this session, in timeline
// order, for session persistence.
func (e *Engine) TriggeredIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []string
	for _, ann := range e.timeline.Ordered() {
		if _, ok := e.triggered[ann.ID]; ok {
			out = append(out, ann.ID)
		}
	}
	return out
}

// Restore seeds the engine from a stored session: cursor position and
// already-fired ids. Ids no longer present in the timeline are dropped.
func (e *Engine) Restore(positionMs int64, triggeredIDs []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	for _, id := range triggeredIDs {
		if e.timeline.AnnotationByID(id) != nil {
			e.triggered[id] = struct{}{}
		}
	}
	e.lastObservedMs = positionMs
	if e.clock != nil {
		e.clock.Pause(positionMs)
	}
	e.notifyLocked()
}
