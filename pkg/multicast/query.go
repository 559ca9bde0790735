package multicast

import (
	"github.com/modern-go/reflect2"
)

// Add registers a listener with a weak handle. Re-adding an already
// registered listener is a no-op, a listener is delivered at most one
// entry regardless of how often it is added. Nil listeners are ignored.
func Add[T any](r Registry, listener *T) {
	if reflect2.IsNil(listener) {
		return
	}
	r.Register(NewRef(listener))
}

// Get returns all live registered listeners satisfying the capability
// T, typed as T. Handles found dead during the scan are removed from
// the registry, this is the only place dead handles are purged.
//
// The result is a snapshot, later registry mutations do not affect it
// and vice versa. The order of the result is unspecified. A capability
// nobody satisfies yields an empty result, never a failure.
func Get[T any](r Registry) []T {
	var result []T
	var dead []Ref

	for _, e := range r.entries() {
		target, ok := e.Get()
		if !ok {
			// removal is deferred to keep the scan stable
			dead = append(dead, e)
			continue
		}
		if t, ok := target.(T); ok {
			result = append(result, t)
		}
	}
	r.discard(dead)
	return result
}
