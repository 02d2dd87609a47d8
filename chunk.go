package ecs

import "reflect"

// chunkCapacity is the fixed row capacity of one chunk: a power of two
// chosen at build time so the within-chunk slot in Archetype.chunkOf is a
// bit mask (row & (chunkCapacity-1)) instead of a modulo.
const chunkCapacity = 4096

// column is one dense, per-component array inside a chunk. Tag components
// (size 0) carry no backing array at all; array is the zero Value and every
// access is a presence check only.
type column struct {
	compID EntityId
	tag    bool
	array  reflect.Value // []T, length == chunkCapacity, valid indices < count
}

// chunk is a fixed-capacity column block: one entity slot array plus one
// column per component in the owning archetype's signature (tag columns
// carry no array), held in the same order as the archetype's signature.
type chunk struct {
	entities [chunkCapacity]EntityId
	columns  []column
	count    int
}

func newChunk(types []*componentType) *chunk {
	c := &chunk{columns: make([]column, len(types))}
	for i, ct := range types {
		col := column{compID: ct.info.ID, tag: ct.info.isTag()}
		if !col.tag {
			col.array = ct.newArray(chunkCapacity)
		}
		c.columns[i] = col
	}
	return c
}

func (c *chunk) full() bool { return c.count >= chunkCapacity }

// push appends entity to the chunk and returns its slot. The caller must
// have already verified the chunk is not full.
func (c *chunk) push(e EntityId) int {
	slot := c.count
	c.entities[slot] = e
	c.count++
	return slot
}

// swapRemove removes the entity at slot by swapping the last live entity
// into its place (for the entity array and every column) and shrinking
// count. It reports the id that was swapped into slot so the caller can
// patch that entity's EntityIndex row; ok is false if slot was already the
// last live row (nothing needed swapping).
func (c *chunk) swapRemove(slot int) (moved EntityId, ok bool) {
	last := c.count - 1
	if slot < 0 || slot > last {
		return 0, false
	}
	if slot != last {
		c.entities[slot] = c.entities[last]
		for i := range c.columns {
			col := &c.columns[i]
			if col.tag {
				continue
			}
			col.array.Index(slot).Set(col.array.Index(last))
		}
		moved = c.entities[slot]
		ok = true
	}
	c.entities[last] = 0
	c.count--
	return moved, ok
}

// slotFor returns the reflect.Value slot for component index col (an
// archetype column index, not a component id) and row, or the zero Value
// for a tag column.
func (c *chunk) slotFor(col, row int) reflect.Value {
	column := &c.columns[col]
	if column.tag {
		return reflect.Value{}
	}
	return column.array.Index(row)
}

// copyValue copies the value at (srcCol, srcRow) in src into the same-component
// column of dst at dstRow. Both chunks must carry that component as a
// non-tag column at the given column indices.
func copyValue(src *chunk, srcCol, srcRow int, dst *chunk, dstCol, dstRow int) {
	sc := &src.columns[srcCol]
	if sc.tag {
		return
	}
	dst.columns[dstCol].array.Index(dstRow).Set(sc.array.Index(srcRow))
}
