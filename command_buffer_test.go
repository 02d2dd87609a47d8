package ecs

import "testing"

// TestDeferredSetReplaysAfterCursorReleases checks that adding a new
// component to an entity while a Cursor holds the world's lock is deferred,
// and takes effect once the cursor finishes iterating and releases it.
func TestDeferredSetReplaysAfterCursorReleases(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	hp := RegisterComponent[Health](w)

	ids := make([]EntityId, 3)
	for i := range ids {
		e := w.spawn()
		if err := pos.Set(w, e, Position{X: float64(i)}); err != nil {
			t.Fatalf("Set: %v", err)
		}
		ids[i] = e
	}

	q := NewQuery().With(pos.ID()).Build(w)
	c := Factory.NewCursor(w, q)

	seen := 0
	for e := range c.Entities() {
		seen++
		if hp.Has(w, e) {
			t.Errorf("component add should not be visible mid-iteration, only after merge")
		}
		if err := hp.Set(w, e, Health{HP: 1}); err != nil {
			t.Fatalf("deferred Set: %v", err)
		}
	}
	if seen != len(ids) {
		t.Fatalf("iterated %d entities, want %d", seen, len(ids))
	}

	for i, e := range ids {
		if !hp.Has(w, e) {
			t.Errorf("entity %d: Health was not applied after the cursor released its lock", i)
		}
	}
}

// TestDeferredMergeFailureReported checks that a deferred op that can no
// longer apply at drain time is reported via the diagnostic hook rather
// than aborting the rest of the buffer (skip-and-continue).
func TestDeferredMergeFailureReported(t *testing.T) {
	w := NewWorld()
	var failures []DeferredMergeFailure
	Config.SetEventHooks(EventHooks{
		OnMergeFailure: func(f DeferredMergeFailure) { failures = append(failures, f) },
	})
	defer Config.SetEventHooks(EventHooks{})

	e := w.spawn()
	q := NewQuery().Build(w)
	c := Factory.NewCursor(w, q)

	for range c.Entities() {
		if err := Destroy(w, e); err != nil {
			t.Fatalf("deferred destroy: %v", err)
		}
		if err := Destroy(w, e); err != nil {
			t.Fatalf("second deferred destroy should also enqueue without error: %v", err)
		}
	}

	if len(failures) == 0 {
		t.Errorf("expected at least one reported merge failure from destroying an already-destroyed entity")
	}
	if IsAlive(w, e) {
		t.Errorf("the entity should have been destroyed by the first queued op")
	}
}

func TestWorldLockedDuringIteration(t *testing.T) {
	w := NewWorld()
	pos := RegisterComponent[Position](w)
	e := w.spawn()
	pos.Set(w, e, Position{})

	q := NewQuery().With(pos.ID()).Build(w)
	c := Factory.NewCursor(w, q)

	for range c.Entities() {
		if !w.Locked() {
			t.Errorf("world should be locked while a cursor is iterating")
		}
		break
	}
}
