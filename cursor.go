package ecs

import "iter"

// Cursor is a chunk-aware walk over a Query's matched archetypes. It holds
// a storage lock for the duration of iteration (one bit of World.locks,
// acquired on Initialize and released on Reset) and exposes a position
// accessor for callers that want to read components without re-resolving
// the entity from scratch.
type Cursor struct {
	w     *World
	query *Query

	archetypes []*Archetype
	// counts snapshots each archetype's row count as of Initialize, so a
	// spawn landing in an archetype this cursor is still walking (e.g. the
	// root archetype under Each) is never visited by the same iteration
	// that caused it. Spawn is the one structural op that is never
	// deferred (see command_buffer.go), so this snapshot is what keeps
	// iteration seeing a fixed pre-spawn world instead of requiring spawn
	// to queue too.
	counts    []int
	archIndex int
	row       int

	lockBit     uint32
	locked      bool
	initialized bool
}

func newCursor(w *World, q *Query) *Cursor {
	return &Cursor{w: w, query: q}
}

// Initialize locks the world and snapshots the query's current match set,
// along with each matched archetype's row count at this instant. Archetypes
// created mid-iteration (by a deferred merge that runs after this cursor
// releases its lock) are simply not part of this pass, matching the "query
// result is a snapshot for the duration of one iteration" rule naturally
// implied by deferring structural changes during iteration.
func (c *Cursor) Initialize() {
	if c.initialized {
		return
	}
	c.lockBit = c.w.acquireLock()
	c.locked = true
	c.archetypes = c.query.Archetypes()
	c.counts = make([]int, len(c.archetypes))
	for i, a := range c.archetypes {
		c.counts[i] = a.count
	}
	c.initialized = true
}

// Reset releases the lock taken by Initialize, which may trigger a queued
// command-buffer drain if this was the last outstanding lock.
func (c *Cursor) Reset() {
	if c.locked {
		c.w.releaseLock(c.lockBit)
		c.locked = false
	}
	c.archIndex = 0
	c.row = 0
	c.counts = nil
	c.initialized = false
}

// Entities yields every live entity across the query's matched archetypes,
// skipping empty archetypes and empty chunk tails. Only rows that existed
// at Initialize are visited, per the counts snapshot above. The cursor's
// internal position (currentPos) stays valid for the duration of each
// yielded value, for use by AccessibleComponent's GetFromCursor.
func (c *Cursor) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		c.Initialize()
		defer c.Reset()

		for c.archIndex < len(c.archetypes) {
			a := c.archetypes[c.archIndex]
			bound := c.counts[c.archIndex]
			for c.row < bound {
				e := a.entityAt(c.row)
				if !yield(e) {
					return
				}
				c.row++
			}
			c.row = 0
			c.archIndex++
		}
	}
}

// currentPos reports the archetype and row the cursor is positioned at,
// i.e. the last entity yielded by Entities. It is used by accessor helpers
// that want to avoid a second EntityIndex lookup per component read.
func (c *Cursor) currentPos() (*Archetype, int, bool) {
	if !c.initialized || c.archIndex >= len(c.archetypes) {
		return nil, 0, false
	}
	// Entities advances c.row only after yield returns, so while a value is
	// being yielded c.row is that entity's own row.
	row := c.row
	if row >= c.counts[c.archIndex] {
		return nil, 0, false
	}
	return c.archetypes[c.archIndex], row, true
}

// TotalMatched returns the number of entities the query currently matches,
// without holding a lock (a plain Query.Count call).
func (c *Cursor) TotalMatched() int {
	return c.query.Count()
}
