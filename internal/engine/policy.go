package engine

import "rehearse/internal/domain"

// triggeredSetPolicy says how a navigation source rewrites the triggered set.
type triggeredSetPolicy int

const (
	// setReplace clears the set and adds the target id.
	setReplace triggeredSetPolicy = iota
	// setAdditive adds only the target id, never removing anything.
	// Forward play must not erase history or annotations would re-fire
	// on timing jitter.
	setAdditive
	// setBackfill adds the target id and every annotation with a
	// timestamp at or before the target's. A deep link into the middle
	// of a recording must not let a skipped earlier annotation fire
	// later and overwrite the fragment.
	setBackfill
	// setTrimFuture removes every id with a timestamp strictly greater
	// than the scrub time, so scrubbing backward past a bookmark lets it
	// fire again on the way forward.
	setTrimFuture
)

// pausePolicy resolves whether a navigation pauses playback by default. An
// explicit override on the request always wins.
type pausePolicy int

const (
	pauseNever pausePolicy = iota
	pauseAlways
	// pauseAutopause honors the annotation's autopause field, unset
	// resolving to true.
	pauseAutopause
)

// sourcePolicy is one row of the navigation policy table.
type sourcePolicy struct {
	set            triggeredSetPolicy
	updateHash     bool
	overlayAllowed bool
	pause          pausePolicy
}

var sourcePolicies = map[domain.Source]sourcePolicy{
	domain.SourceKeyboard:    {set: setReplace, updateHash: true, overlayAllowed: true, pause: pauseAlways},
	domain.SourceToc:         {set: setReplace, updateHash: true, overlayAllowed: true, pause: pauseNever},
	domain.SourceMarker:      {set: setReplace, updateHash: true, overlayAllowed: true, pause: pauseNever},
	domain.SourceHash:        {set: setBackfill, updateHash: false, overlayAllowed: true, pause: pauseNever},
	domain.SourcePlayback:    {set: setAdditive, updateHash: true, overlayAllowed: true, pause: pauseAutopause},
	domain.SourceProgressBar: {set: setTrimFuture, updateHash: false, overlayAllowed: false, pause: pauseAlways},
}

func policyFor(src domain.Source) sourcePolicy {
	if p, ok := sourcePolicies[src]; ok {
		return p
	}
	// Unknown sources behave like direct user navigation.
	return sourcePolicies[domain.SourceKeyboard]
}
