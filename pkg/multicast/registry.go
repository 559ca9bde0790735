package multicast

import (
	"reflect"
	"slices"

	"github.com/modern-go/reflect2"
)

type registry struct {
	refs []Ref
}

var _ Registry = (*registry)(nil)

func (r *registry) Register(ref Ref) {
	if ref == nil {
		return
	}
	target, ok := ref.Get()
	if !ok {
		// already dead, would be compacted by the next scan anyway
		return
	}
	for _, e := range r.refs {
		if t, ok := e.Get(); ok && identical(t, target) {
			return
		}
	}
	r.refs = append(r.refs, ref)
}

func (r *registry) Clear() {
	r.refs = nil
}

func (r *registry) entries() []Ref {
	return r.refs
}

func (r *registry) discard(dead []Ref) {
	if len(dead) == 0 {
		return
	}
	r.refs = slices.DeleteFunc(r.refs, func(e Ref) bool {
		return slices.Contains(dead, e)
	})
}

// identical compares two listeners by object identity, never by value.
// Listeners of non-comparable dynamic types are never identical.
func identical(a, b any) bool {
	if reflect2.IsNil(a) || reflect2.IsNil(b) {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
