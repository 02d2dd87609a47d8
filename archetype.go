package ecs

import "github.com/TheBitDrifter/mask"

type archetypeID uint32

// Archetype is the canonical home of every entity with a given exact
// component set. Archetypes are arena-owned (see World.archetypes) and
// referenced by index/pointer from the graph edges and from every
// EntityRecord: a single owning slice rather than scattered pointers,
// which is what World.archetypes is.
type Archetype struct {
	id   archetypeID
	sig  signature
	hash uint64

	// lookup maps a component id in sig to its column index, shared by every
	// chunk in this archetype. Absence means "not in this archetype"; callers
	// check via signature.contains first.
	lookup map[EntityId]int
	types  []*componentType // parallel to lookup values; a tag has a Size 0 entry, never nil

	// preFilter is a fast pre-check: a mask.Mask256 bit per plain (non-pair)
	// component this archetype carries, consulted by the matcher before it
	// falls back to the ordered signature walk that resolves Optional/Or/
	// wildcard precisely. Pairs never contribute a bit; an archetype with
	// pairs in the query is always precise-checked.
	preFilter mask.Mask256

	chunks []*chunk
	count  int

	edgesAdd    map[EntityId]*Archetype
	edgesRemove map[EntityId]*Archetype
}

func newArchetypeNode(id archetypeID, sig signature, w *World) *Archetype {
	a := &Archetype{
		id:          id,
		sig:         sig,
		hash:        signatureHash(sig),
		lookup:      make(map[EntityId]int, len(sig)),
		types:       make([]*componentType, len(sig)),
		edgesAdd:    make(map[EntityId]*Archetype),
		edgesRemove: make(map[EntityId]*Archetype),
	}
	for i, cid := range sig {
		a.lookup[cid] = i
		a.types[i] = w.resolveColumnType(cid)
		if bit, ok := w.maskBit(cid); ok {
			a.preFilter.Mark(bit)
		}
	}
	return a
}

// columnIndex returns the column index for component c in this archetype,
// and whether c is present at all.
func (a *Archetype) columnIndex(c EntityId) (int, bool) {
	idx, ok := a.lookup[c]
	return idx, ok
}

func (a *Archetype) chunkOf(row int) (*chunk, int) {
	return a.chunks[row/chunkCapacity], row & (chunkCapacity - 1)
}

// ensureChunk returns a chunk with spare capacity, appending a new one if
// every existing chunk is full.
func (a *Archetype) ensureChunk() *chunk {
	if n := len(a.chunks); n > 0 && !a.chunks[n-1].full() {
		return a.chunks[n-1]
	}
	c := newChunk(a.types)
	a.chunks = append(a.chunks, c)
	return c
}

// push appends entity e to this archetype's storage and returns its new
// global row.
func (a *Archetype) push(e EntityId) int {
	c := a.ensureChunk()
	chunkIdx := len(a.chunks) - 1
	slot := c.push(e)
	a.count++
	return chunkIdx*chunkCapacity + slot
}

// swapRemove removes the entity at row, compacting its chunk. It reports
// the id that ended up at row after the swap (for the EntityIndex patch)
// and whether a swap actually happened.
func (a *Archetype) swapRemove(row int) (moved EntityId, ok bool) {
	c, slot := a.chunkOf(row)
	moved, ok = c.swapRemove(slot)
	a.count--
	return moved, ok
}

func (a *Archetype) entityAt(row int) EntityId {
	c, slot := a.chunkOf(row)
	return c.entities[slot]
}

// edgeAdd resolves (memoizing into a.edgesAdd) the archetype reached by
// adding component c to a's signature, building it via the World's type
// index if no archetype with that signature exists yet.
func (a *Archetype) edgeAdd(w *World, c EntityId) *Archetype {
	if next, ok := a.edgesAdd[c]; ok {
		return next
	}
	newSig := a.sig.with(c)
	next := w.archetypeFor(newSig)
	a.edgesAdd[c] = next
	next.edgesRemove[c] = a
	return next
}

// edgeRemove resolves the archetype reached by removing component c.
func (a *Archetype) edgeRemove(w *World, c EntityId) *Archetype {
	if next, ok := a.edgesRemove[c]; ok {
		return next
	}
	newSig := a.sig.without(c)
	next := w.archetypeFor(newSig)
	a.edgesRemove[c] = next
	next.edgesAdd[c] = a
	return next
}

// linkGraph wires bidirectional edges between n and every existing
// archetype whose signature differs from n's by exactly one component, in
// either direction. This is conceptually "traverse from root through
// edges_add"; since every archetype is reachable from root via a sequence
// of adds, scanning the full arena is equivalent and simpler.
func linkGraph(existing []*Archetype, n *Archetype) {
	for _, a := range existing {
		if a == n {
			continue
		}
		switch len(a.sig) - len(n.sig) {
		case -1:
			if extra, ok := singleExtra(n.sig, a.sig); ok {
				a.edgesAdd[extra] = n
				n.edgesRemove[extra] = a
			}
		case 1:
			if extra, ok := singleExtra(a.sig, n.sig); ok {
				n.edgesAdd[extra] = a
				a.edgesRemove[extra] = n
			}
		}
	}
}

// singleExtra reports the one component present in big but not small, if
// big is exactly small plus one component (both sorted signatures).
func singleExtra(big, small signature) (EntityId, bool) {
	if len(big) != len(small)+1 {
		return 0, false
	}
	i, j := 0, 0
	var extra EntityId
	found := false
	for i < len(big) {
		if j < len(small) && big[i] == small[j] {
			i++
			j++
			continue
		}
		if found {
			return 0, false
		}
		extra = big[i]
		found = true
		i++
	}
	if j != len(small) {
		return 0, false
	}
	return extra, found
}
