package memory

import (
	"sync"

	"rehearse/internal/ports"
)

// FragmentChannel is an in-process fragment store. It stands in for a
// browser's URL fragment: the player reads and writes it, and anything else
// (a pasted deep link, a test) can push an external change through Notify.
type FragmentChannel struct {
	mu        sync.Mutex
	fragment  string
	listeners map[int]func(string)
	nextID    int
}

var _ ports.FragmentChannel = (*FragmentChannel)(nil)

// NewFragmentChannel creates a channel holding the given initial fragment
// (pass "" for none).
func NewFragmentChannel(initial string) *FragmentChannel {
	return &FragmentChannel{
		fragment:  trimDelimiter(initial),
		listeners: make(map[int]func(string)),
	}
}

// Get returns the current fragment without its delimiter, or "".
func (c *FragmentChannel) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fragment
}

// Set replaces the fragment. Local writes do not notify watchers.
func (c *FragmentChannel) Set(fragment string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fragment = trimDelimiter(fragment)
}

// Clear removes the fragment.
func (c *FragmentChannel) Clear() {
	c.Set("")
}

// Watch registers a listener for external changes.
func (c *FragmentChannel) Watch(fn func(string)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Notify applies an externally originated fragment change and informs every
// watcher. Accepts values with or without a leading '#'.
func (c *FragmentChannel) Notify(fragment string) {
	c.mu.Lock()
	c.fragment = trimDelimiter(fragment)
	fns := make([]func(string), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	frag := c.fragment
	c.mu.Unlock()

	for _, fn := range fns {
		fn(frag)
	}
}

func trimDelimiter(fragment string) string {
	if len(fragment) > 0 && fragment[0] == '#' {
		return fragment[1:]
	}
	return fragment
}
