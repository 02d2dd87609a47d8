// Package stats provides introspection snapshots for a World: a
// WorldStats/EntityStats/ArchetypeStats shape built for EntityId-keyed
// components and chunked archetype storage.
package stats

import "fmt"

// WorldStats is a point-in-time snapshot of one World.
type WorldStats struct {
	Entities       EntityStats
	ComponentCount int
	Locked         bool
	Archetypes     []ArchetypeStats
}

// EntityStats summarizes the entity index.
type EntityStats struct {
	Used     int
	Capacity int
	Recycled int
}

// ArchetypeStats summarizes one archetype.
type ArchetypeStats struct {
	Size       int
	Chunks     int
	ChunkCap   int
	Components int
	// ComponentIDs holds the raw uint64 encoding of each component in the
	// archetype's signature, including pair components.
	ComponentIDs []uint64
}

func (s *WorldStats) String() string {
	out := fmt.Sprintf("World -- Components: %d, Archetypes: %d, Locked: %t\n", s.ComponentCount, len(s.Archetypes), s.Locked)
	out += s.Entities.String()
	for _, a := range s.Archetypes {
		out += a.String()
	}
	return out
}

func (s *EntityStats) String() string {
	return fmt.Sprintf("Entities -- Used: %d, Recycled: %d, Capacity: %d\n", s.Used, s.Recycled, s.Capacity)
}

func (s *ArchetypeStats) String() string {
	return fmt.Sprintf(
		"Archetype -- Components: %d, Entities: %d, Chunks: %d (cap %d each)\n  IDs: %v\n",
		s.Components, s.Size, s.Chunks, s.ChunkCap, s.ComponentIDs,
	)
}
