package ecs

import "github.com/archgraph/ecs/stats"

// Stats snapshots w for diagnostics/introspection: entity counts, the
// registered component count, lock state, and a per-archetype breakdown.
func (w *World) Stats() stats.WorldStats {
	s := stats.WorldStats{
		ComponentCount: len(w.registry.byID),
		Locked:         w.Locked(),
	}

	used, recycled := 0, len(w.entities.freeList)
	for _, alive := range w.entities.alive {
		if alive {
			used++
		}
	}
	s.Entities = stats.EntityStats{
		Used:     used,
		Recycled: recycled,
		Capacity: len(w.entities.records),
	}

	for _, a := range w.archetypes {
		ids := make([]uint64, len(a.sig))
		for i, id := range a.sig {
			ids[i] = uint64(id)
		}
		s.Archetypes = append(s.Archetypes, stats.ArchetypeStats{
			Size:         a.count,
			Chunks:       len(a.chunks),
			ChunkCap:     chunkCapacity,
			Components:   len(a.sig),
			ComponentIDs: ids,
		})
	}
	return s
}
