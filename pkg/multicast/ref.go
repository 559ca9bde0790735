package multicast

import (
	"weak"
)

// weakRef resolves its listener via a weak pointer. The garbage
// collector invalidates it asynchronously once the owner drops the
// listener.
type weakRef[T any] struct {
	ptr weak.Pointer[T]
}

var _ Ref = weakRef[any]{}

func (r weakRef[T]) Get() (any, bool) {
	if p := r.ptr.Value(); p != nil {
		return p, true
	}
	return nil, false
}

// NewRef creates a weak, non-owning handle for a listener, suitable
// for Registry.Register. Add is the usual shortcut.
func NewRef[T any](listener *T) Ref {
	return weakRef[T]{weak.Make(listener)}
}

// Anchor is a handle whose lifetime is controlled by the listener's
// owner instead of the garbage collector. It keeps the listener alive
// until the owner calls Discard. It implements the registry handle
// contract for environments requiring deterministic invalidation.
type Anchor struct {
	target any
}

var _ Ref = (*Anchor)(nil)

// NewAnchor creates an owner-controlled handle for a listener.
func NewAnchor(listener any) *Anchor {
	return &Anchor{target: listener}
}

func (a *Anchor) Get() (any, bool) {
	if a.target == nil {
		return nil, false
	}
	return a.target, true
}

// Discard invalidates the handle. The listener will be dropped from
// any registry during the next query scan. Discard is idempotent.
func (a *Anchor) Discard() {
	a.target = nil
}
