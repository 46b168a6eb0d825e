package engine

import "rehearse/internal/ports"

// HashSync bridges the engine's active annotation to the fragment of a
// shareable deep link.
type HashSync struct {
	ch ports.FragmentChannel
}

// NewHashSync wraps a fragment channel.
func NewHashSync(ch ports.FragmentChannel) *HashSync {
	return &HashSync{ch: ch}
}

// Sync writes the id as the fragment, but only if it differs from the
// current value. Redundant writes would pollute navigation history.
func (h *HashSync) Sync(id string) {
	if h.ch.Get() != id {
		h.ch.Set(id)
	}
}

// Clear removes the fragment, preserving the rest of the link.
func (h *HashSync) Clear() {
	h.ch.Clear()
}

// Read returns the current fragment and whether one is present.
func (h *HashSync) Read() (string, bool) {
	frag := h.ch.Get()
	return frag, frag != ""
}
