/*
Package ecs provides an archetype-based Entity-Component-System core for
games and simulations.

Entities with the same exact component set live together in an Archetype,
stored column-major across fixed-capacity chunks for cache-friendly
iteration. Adding or removing a component moves an entity to a neighboring
archetype along a memoized graph edge, so repeated structural changes never
re-walk the type index.

Core Concepts:

  - EntityId: a handle to either a plain entity or a relationship pair.
  - Archetype: a collection of entities sharing the same component set.
  - Query: a way to find entities by With/Without/Optional/Or component terms.
  - Cursor: a locked, chunk-aware iterator over a Query's matched archetypes.

Basic Usage:

	w := ecs.NewWorld()

	position := ecs.RegisterComponent[Position](w)
	velocity := ecs.RegisterComponent[Velocity](w)

	e := ecs.Spawn(w)
	position.Set(w, e, Position{X: 10, Y: 20})
	velocity.Set(w, e, Velocity{X: 1, Y: 2})

	query := ecs.NewQuery().With(position.ID(), velocity.ID()).Build(w)
	cursor := ecs.Factory.NewCursor(w, query)

	for entity := range cursor.Entities() {
		pos, _ := position.GetFromCursor(cursor)
		vel, _ := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
		position.Set(w, entity, pos)
	}

Structural changes issued from inside a Cursor iteration (destroy, Set of a
not-yet-present component, Unset) are automatically deferred into a command
buffer and replayed once the outermost cursor releases its lock. Spawn is not
deferred: the new entity is created immediately and is visible at once, but
the running cursor does not visit it because it only walks the rows that
existed when it started.
*/
package ecs
