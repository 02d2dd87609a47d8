package ecs

// EventHooks are the optional, external collaborator callbacks a World
// fires on structural change. They must not perform direct structural
// mutation (only through the command buffer) and must not invalidate the
// current entity row; the core does not enforce this, it only documents it.
type EventHooks struct {
	OnComponentSet    func(w *World, e EntityId, c EntityId)
	OnComponentUnset  func(w *World, e EntityId, c EntityId)
	OnEntityDestroyed func(w *World, e EntityId)
	// OnMergeFailure is the diagnostic sink for DeferredMergeFailure: merge
	// always completes, each skipped op is reported here individually.
	OnMergeFailure func(failure DeferredMergeFailure)
}

// Config holds global configuration for the package: a single struct
// holding injectable callback tables, discoverable from any call site.
var Config config = config{ChunkCapacity: chunkCapacity}

type config struct {
	Hooks EventHooks
	// ChunkCapacity documents the build constant chunk storage uses; it is
	// not consulted at runtime (chunkCapacity must stay a compile-time power
	// of two for the row/chunk bit-math in Archetype.chunkOf), but it is
	// surfaced here so callers can observe the value this build was
	// compiled with.
	ChunkCapacity int
}

// SetEventHooks configures the optional structural-change callback table.
func (c *config) SetEventHooks(h EventHooks) {
	c.Hooks = h
}
