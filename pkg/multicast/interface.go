// Package multicast provides a typed, multi-listener registry for
// arbitrary objects. Objects are registered once; consumers later query
// for all registered objects satisfying a capability, expressed as a
// plain Go interface, or broadcast a call to all of them.
//
// There is no explicit subscription per capability and no conditional
// nil checking on the consumer side. A query for a capability nobody
// provides yields an empty list. The registry holds listeners weakly,
// it never extends their lifetime. Listeners reclaimed by the garbage
// collector (or explicitly discarded by their owner, see Anchor) vanish
// from query results and are compacted lazily during the next query.
//
//	type OnPictureTaken interface {
//		OnPictureTaken(picture Bitmap)
//	}
//
//	reg := multicast.New()
//	multicast.Add(reg, listener)
//
//	// typed path, full control over delivery
//	for _, l := range multicast.Get[OnPictureTaken](reg) {
//		l.OnPictureTaken(pic)
//	}
//
//	// dynamic fire-and-forget path
//	err := multicast.Invoke[OnPictureTaken](reg, "OnPictureTaken", pic)
//
// The order in which listeners are returned or called is not part of
// the contract. A registry is not safe for concurrent use, callers
// have to provide their own synchronization.
package multicast

// Ref is the registry's non-owning handle for a registered listener.
// It resolves the listener on demand without keeping it alive.
// Implementations must be comparable, the registry identifies handles
// during compaction by comparing them.
type Ref interface {
	// Get resolves the listener. It reports false once the listener
	// has been reclaimed or discarded. A handle observed dead must
	// never become live again.
	Get() (any, bool)
}

// Registry holds a set of listener handles deduplicated by object
// identity. Dead handles are removed lazily whenever a query scans
// the registry.
type Registry interface {
	// Register adds an explicit handle. It is a no-op if a live
	// handle for the same listener identity is already present.
	// Typical callers use Add instead.
	Register(ref Ref)

	// Clear removes all handles immediately, regardless of liveness.
	Clear()

	entries() []Ref
	discard(dead []Ref)
}

// New creates an empty listener registry.
func New() Registry {
	return &registry{}
}
