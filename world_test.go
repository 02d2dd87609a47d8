package ecs

import "testing"

type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }
type Health struct{ HP int }

func TestSpawnSetGetLifecycle(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)

	e := w.spawn()
	if !IsAlive(w, e) {
		t.Fatalf("freshly spawned entity should be alive")
	}
	if err := pos.Set(w, e, Position{X: 1, Y: 2}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := pos.Get(w, e)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != (Position{X: 1, Y: 2}) {
		t.Errorf("got %+v, want {1 2}", got)
	}

	if err := Destroy(w, e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if IsAlive(w, e) {
		t.Errorf("destroyed entity should no longer be alive")
	}
}

func TestRecycledIndexBumpsGeneration(t *testing.T) {
	w := NewWorld()
	e1 := w.spawn()
	idx := e1.RawIndex()
	if err := Destroy(w, e1); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	e2 := w.spawn()
	if e2.RawIndex() != idx {
		t.Fatalf("expected recycled index %d, got %d", idx, e2.RawIndex())
	}
	if e2.Generation() == e1.Generation() {
		t.Errorf("recycled slot did not bump generation: %d == %d", e2.Generation(), e1.Generation())
	}
	if IsAlive(w, e1) {
		t.Errorf("stale handle to a recycled slot must read as dead")
	}
}

func TestSwapRemoveIntegrity(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)

	ids := make([]EntityId, 5)
	for i := range ids {
		e := w.spawn()
		if err := pos.Set(w, e, Position{X: float64(i)}); err != nil {
			t.Fatalf("Set: %v", err)
		}
		ids[i] = e
	}

	mid := ids[2]
	if err := Destroy(w, mid); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	for i, id := range ids {
		if id == mid {
			continue
		}
		if !IsAlive(w, id) {
			t.Fatalf("entity %d should still be alive after an unrelated swap-remove", i)
		}
		got, err := pos.Get(w, id)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if got.X != float64(i) {
			t.Errorf("swap-remove corrupted entity %d: got X=%v, want %v", i, got.X, i)
		}
	}
}

func TestSetUnsetMigrationPreservesOtherColumns(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	vel := RegisterComponent[Velocity](w)

	e := w.spawn()
	if err := pos.Set(w, e, Position{X: 3, Y: 4}); err != nil {
		t.Fatalf("Set pos: %v", err)
	}
	if err := vel.Set(w, e, Velocity{X: 5, Y: 6}); err != nil {
		t.Fatalf("Set vel: %v", err)
	}

	if err := vel.Unset(w, e); err != nil {
		t.Fatalf("Unset: %v", err)
	}
	if vel.Has(w, e) {
		t.Errorf("velocity should have been removed")
	}
	got, err := pos.Get(w, e)
	if err != nil {
		t.Fatalf("Get after migration: %v", err)
	}
	if got != (Position{X: 3, Y: 4}) {
		t.Errorf("migration corrupted Position: got %+v", got)
	}
}

func TestSpawnAtRejectsLiveIndex(t *testing.T) {
	w := NewWorld()
	e := w.spawn()
	idx := e.RawIndex()

	if _, err := w.spawnAt(idx); err == nil {
		t.Fatalf("expected spawnAt to reject an already-live index")
	}

	if err := Destroy(w, e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	reused, err := w.spawnAt(idx)
	if err != nil {
		t.Fatalf("spawnAt after destroy: %v", err)
	}
	if reused.RawIndex() != idx {
		t.Errorf("expected spawnAt to reuse index %d, got %d", idx, reused.RawIndex())
	}
	if !IsAlive(w, reused) {
		t.Errorf("entity spawned via spawnAt should be alive")
	}
}

func TestEachVisitsEveryLiveEntityAcrossArchetypes(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	vel := RegisterComponent[Velocity](w)

	a := w.spawn()
	b := w.spawn()
	pos.Set(w, b, Position{})
	c := w.spawn()
	vel.Set(w, c, Velocity{})

	seen := make(map[EntityId]bool)
	Each(w, func(e EntityId) bool {
		seen[e] = true
		return true
	})
	for _, e := range []EntityId{a, b, c} {
		if !seen[e] {
			t.Errorf("Each did not visit entity %v", e)
		}
	}

	count := 0
	Each(w, func(e EntityId) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Each should stop after the first false return, visited %d", count)
	}
}

func TestGetMissingComponentErrors(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	e := w.spawn()
	if _, err := pos.Get(w, e); err == nil {
		t.Errorf("expected an error reading an unset component")
	}
	if _, ok := pos.TryGet(w, e); ok {
		t.Errorf("TryGet should report false for an unset component")
	}
}
