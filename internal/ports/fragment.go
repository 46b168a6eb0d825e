package ports

// FragmentChannel is the external string channel the hash synchronizer
// bridges to: the fragment part of a shareable deep link.
type FragmentChannel interface {
	// Get returns the current fragment with its delimiter stripped, or ""
	// when absent.
	Get() string

	// Set replaces the fragment.
	Set(fragment string)

	// Clear removes the fragment, preserving the rest of the link.
	Clear()

	// Watch registers a listener for external fragment changes and
	// returns a function that deregisters it. Listeners are not invoked
	// for changes made through Set or Clear on the same channel.
	Watch(fn func(fragment string)) (cancel func())
}
