package ecs_test

import (
	"fmt"

	"github.com/archgraph/ecs"
)

type Position struct{ X, Y float64 }
type Velocity struct{ X, Y float64 }
type Name struct{ Value string }

// Example_basic shows entity creation, component assignment, and querying.
func Example_basic() {
	w := ecs.NewWorld()

	position := ecs.RegisterComponent[Position](w)
	velocity := ecs.RegisterComponent[Velocity](w)
	name := ecs.RegisterComponent[Name](w)

	for i := 0; i < 5; i++ {
		e := ecs.Spawn(w)
		position.Set(w, e, Position{})
	}
	for i := 0; i < 3; i++ {
		e := ecs.Spawn(w)
		position.Set(w, e, Position{})
		velocity.Set(w, e, Velocity{})
	}

	player := ecs.Spawn(w)
	position.Set(w, player, Position{X: 10, Y: 20})
	velocity.Set(w, player, Velocity{X: 1, Y: 2})
	name.Set(w, player, Name{Value: "Player"})

	query := ecs.NewQuery().With(position.ID(), velocity.ID()).Build(w)
	cursor := ecs.Factory.NewCursor(w, query)
	matchCount := 0
	for range cursor.Entities() {
		matchCount++
	}
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	named := ecs.NewQuery().With(name.ID()).Build(w)
	cursor = ecs.Factory.NewCursor(w, named)
	for e := range cursor.Entities() {
		pos, _ := position.GetFromCursor(cursor)
		vel, _ := velocity.GetFromCursor(cursor)
		nme, _ := name.GetFromCursor(cursor)

		pos.X += vel.X
		pos.Y += vel.Y
		position.Set(w, e, pos)

		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
	}

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_relationships shows parent/child cascade delete.
func Example_relationships() {
	w := ecs.NewWorld()

	parent := ecs.Spawn(w)
	child := ecs.Spawn(w)
	ecs.SetParent(w, child, parent)

	fmt.Println("child alive before:", ecs.IsAlive(w, child))
	ecs.Destroy(w, parent)
	fmt.Println("child alive after:", ecs.IsAlive(w, child))

	// Output:
	// child alive before: true
	// child alive after: false
}
