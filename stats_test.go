package ecs

import "testing"

func TestStatsReflectsLiveEntities(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)

	e := w.spawn()
	pos.Set(w, e, Position{})

	s := w.Stats()
	if s.Entities.Used < 1 {
		t.Errorf("expected at least 1 used entity, got %d", s.Entities.Used)
	}
	if len(s.Archetypes) == 0 {
		t.Errorf("expected at least one archetype in the snapshot")
	}
	if s.ComponentCount == 0 {
		t.Errorf("expected RegisterComponent to show up in ComponentCount")
	}
}
