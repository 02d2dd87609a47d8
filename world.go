package ecs

import "github.com/TheBitDrifter/mask"

// World is the root handle for one archetype store: its own registry, its
// own entity index, its own archetype arena and type index, and its own
// lock/defer state. Per component.go's registry doc, nothing is shared
// between two Worlds.
type World struct {
	registry *registry
	entities *entityIndex
	types    *typeIndex
	root     *Archetype

	archetypes []*Archetype

	names *SimpleCache[EntityId]

	queries *queryCache

	// locks is a bitset over concurrently active cursor/query iterations:
	// each holds one bit, acquired via acquireLock and released via
	// releaseLock. Unmarking the last bit drains the command buffer.
	locks       mask.Mask256
	nextLockBit uint32

	commands *commandBuffer

	// compBit maps a plain (non-pair) component id to its preFilter bit, so
	// Archetype.preFilter and the matcher's mask.Mask256 pre-check agree on
	// numbering. Bits are assigned on first sight, capped at 256 like any
	// other Mask256 consumer; pair components never get a bit and always
	// fall back to the precise signature walk.
	compBit    map[EntityId]uint32
	nextCompBit uint32

	// childOf and doNotDelete are lazily minted well-known relation/tag
	// entities backing the cascade-delete and protected-entity rules in
	// mutator.go.
	childOf     EntityId
	doNotDelete EntityId
}

const maxPreFilterBits = 256

// NewWorld constructs an empty store with the root (empty-signature)
// archetype already materialized, so lookups never need a nil check.
func NewWorld() *World {
	w := &World{
		registry: newRegistry(),
		entities: newEntityIndex(),
		types:    newTypeIndex(),
		names:    newSimpleCache[EntityId](1 << 20),
		compBit:  make(map[EntityId]uint32),
	}
	w.queries = newQueryCache(w)
	w.commands = newCommandBuffer(w)
	w.root = w.archetypeFor(newSignature())
	return w
}

// maskBit returns the preFilter bit for a plain component id, assigning one
// on first use. Pair ids never get a bit.
func (w *World) maskBit(c EntityId) (uint32, bool) {
	if c.IsPair() {
		return 0, false
	}
	if bit, ok := w.compBit[c]; ok {
		return bit, true
	}
	if w.nextCompBit >= maxPreFilterBits {
		return 0, false
	}
	bit := w.nextCompBit
	w.nextCompBit++
	w.compBit[c] = bit
	return bit, true
}

// resolveColumnType returns the componentType backing column storage for
// component id cid within an archetype. It always returns a non-nil value:
// a tag componentType (Size 0, no array factory) stands in for anything that
// isn't a registered sized Go type, which is exactly right for bare tag
// components, for pair tags, and for a plain target entity used as a
// component id with no registration of its own.
func (w *World) resolveColumnType(cid EntityId) *componentType {
	if cid.IsPair() {
		first, second := cid.PairFirst(), cid.PairSecond()
		info := w.registry.pairInfo(first, second)
		if info.isTag() {
			return &componentType{info: info}
		}
		if ct, ok := w.registry.lookupID(second); ok {
			return &componentType{info: info, goType: ct.goType, newArray: ct.newArray}
		}
		return &componentType{info: info}
	}
	if ct, ok := w.registry.lookupID(cid); ok {
		return ct
	}
	return &componentType{info: ComponentInfo{ID: cid, Size: 0}}
}

// archetypeFor returns the single archetype for signature sig, creating and
// graph-linking it if this is the first time it's been reached. Exactly one
// archetype ever exists per distinct component set.
func (w *World) archetypeFor(sig signature) *Archetype {
	hash := signatureHash(sig)
	if a, ok := w.types.find(hash, sig); ok {
		return a
	}
	id := archetypeID(len(w.archetypes))
	a := newArchetypeNode(id, sig, w)
	linkGraph(w.archetypes, a)
	w.archetypes = append(w.archetypes, a)
	w.types.insert(a)
	return a
}

// acquireLock takes a fresh lock bit for a new cursor/query iteration.
func (w *World) acquireLock() uint32 {
	bit := w.nextLockBit
	w.nextLockBit = (w.nextLockBit + 1) % maxPreFilterBits
	w.locks.Mark(bit)
	return bit
}

// releaseLock releases bit; when it was the last outstanding lock, it drains
// the command buffer.
func (w *World) releaseLock(bit uint32) {
	w.locks.Unmark(bit)
	if w.locks.IsEmpty() {
		w.commands.drain()
	}
}

// Locked reports whether any cursor/query iteration currently holds a lock,
// i.e. whether structural mutation must go through the command buffer.
func (w *World) Locked() bool {
	return !w.locks.IsEmpty()
}

// BeginDeferred and EndDeferred let a caller bracket a region of manual
// deferred work (as opposed to the implicit deferral every cursor iteration
// already performs) the same way a nested storage lock would.
func (w *World) BeginDeferred() uint32 {
	return w.acquireLock()
}

func (w *World) EndDeferred(bit uint32) {
	w.releaseLock(bit)
}

// Merge drains the command buffer immediately when the world is unlocked. It
// is a no-op if the world is currently locked (draining while locked would
// reorder with the in-flight iteration that owns the lock); callers that
// need a synchronous flush should not call it from within a cursor.
func (w *World) Merge() {
	if w.Locked() {
		return
	}
	w.commands.drain()
}
