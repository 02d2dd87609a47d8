package ecs

import "testing"

func TestSpawnNamedAndLookup(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)

	e, err := SpawnNamed(w, "player")
	if err != nil {
		t.Fatalf("SpawnNamed: %v", err)
	}
	if err := pos.Set(w, e, Position{X: 1, Y: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok := LookupNamed(w, "player")
	if !ok || got != e {
		t.Errorf("LookupNamed(player) = %v, %v; want %v, true", got, ok, e)
	}

	if _, ok := LookupNamed(w, "nobody"); ok {
		t.Errorf("expected no match for an unregistered name")
	}
}

func TestComponentsAsString(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	vel := RegisterComponent[Velocity](w)

	e := w.spawn()
	if str := ComponentsAsString(w, e); str != "[]" {
		t.Errorf("bare entity: got %q, want []", str)
	}

	pos.Set(w, e, Position{})
	vel.Set(w, e, Velocity{})
	if str := ComponentsAsString(w, e); str == "[]" {
		t.Errorf("expected a non-empty component list after two Sets")
	}
}
