package ecs

// EntityRecord locates a live entity's row within its archetype.
type EntityRecord struct {
	archetype *Archetype
	row       int
}

// entityIndex is the sparse/dense map from EntityId to EntityRecord,
// generation-aware so a stale handle (one whose owning slot has since been
// recycled) reads back as dead rather than aliasing a different entity.
type entityIndex struct {
	records     []EntityRecord
	generations []uint16
	alive       []bool
	freeList    []uint32
	next        uint32
}

func newEntityIndex() *entityIndex {
	return &entityIndex{}
}

func (ix *entityIndex) grow(index uint32) {
	for uint32(len(ix.records)) <= index {
		ix.records = append(ix.records, EntityRecord{})
		ix.generations = append(ix.generations, 0)
		ix.alive = append(ix.alive, false)
	}
}

// alloc draws a fresh or recycled index and marks it alive, without yet
// assigning a record (the caller places the entity into the root archetype
// and then calls set).
func (ix *entityIndex) alloc() EntityId {
	var index uint32
	if n := len(ix.freeList); n > 0 {
		index = ix.freeList[n-1]
		ix.freeList = ix.freeList[:n-1]
	} else {
		index = ix.next
		ix.next++
		ix.grow(index)
	}
	ix.alive[index] = true
	return makePlain(index, ix.generations[index])
}

// allocAt allocates the specific plain id's index, failing if that index is
// already alive. Used by World.spawnAt.
func (ix *entityIndex) allocAt(index uint32) (EntityId, bool) {
	ix.grow(index)
	if ix.alive[index] {
		return 0, false
	}
	// Reusing an explicit index means taking it out of the free list if it
	// happened to be sitting there.
	for i, f := range ix.freeList {
		if f == index {
			ix.freeList[i] = ix.freeList[len(ix.freeList)-1]
			ix.freeList = ix.freeList[:len(ix.freeList)-1]
			break
		}
	}
	ix.alive[index] = true
	return makePlain(index, ix.generations[index]), true
}

func (ix *entityIndex) isAlive(id EntityId) bool {
	index := id.RawIndex()
	if index >= uint32(len(ix.alive)) {
		return false
	}
	return ix.alive[index] && ix.generations[index] == id.Generation()
}

func (ix *entityIndex) get(id EntityId) (EntityRecord, bool) {
	if !ix.isAlive(id) {
		return EntityRecord{}, false
	}
	return ix.records[id.RawIndex()], true
}

func (ix *entityIndex) set(id EntityId, rec EntityRecord) {
	ix.records[id.RawIndex()] = rec
}

// destroy bumps the slot's generation (so any outstanding handle reads back
// as dead) and returns the index to the free list.
func (ix *entityIndex) destroy(id EntityId) {
	index := id.RawIndex()
	ix.alive[index] = false
	ix.generations[index]++
	ix.records[index] = EntityRecord{}
	ix.freeList = append(ix.freeList, index)
}
