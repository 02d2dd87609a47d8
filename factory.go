package ecs

// factory is a package-level singleton kept as a thin, discoverable front
// door over the lower-case constructors the rest of the package uses
// internally.
type factory struct{}

// Factory is the package's single factory instance.
var Factory factory

// NewWorld creates a new, empty World.
func (f factory) NewWorld() *World {
	return NewWorld()
}

// NewQuery starts a new QueryBuilder.
func (f factory) NewQuery() *QueryBuilder {
	return NewQuery()
}

// NewCursor creates a Cursor over query's match set within w.
func (f factory) NewCursor(w *World, query *Query) *Cursor {
	return newCursor(w, query)
}

// NewCache creates a SimpleCache[T] with the given capacity. Methods can't
// carry their own type parameters in Go, so this lives as a free function
// rather than on factory, same as RegisterComponent in entity.go.
func NewCache[T any](capacity int) Cache[T] {
	return newSimpleCache[T](capacity)
}
