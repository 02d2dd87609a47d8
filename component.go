package ecs

import "reflect"

// ComponentInfo is the registered identity of a component type: its entity
// id (components are entities in their own right) and its per-instance
// payload size. size == 0 marks a tag: presence-only, no column bytes.
type ComponentInfo struct {
	ID   EntityId
	Size uintptr
}

func (c ComponentInfo) isTag() bool { return c.Size == 0 }

// componentType is the registry-side record backing a ComponentInfo: it
// additionally knows the Go type and how to allocate a dense array of it,
// the array factory every registered type needs for chunk storage.
type componentType struct {
	info     ComponentInfo
	goType   reflect.Type
	newArray func(n int) reflect.Value // reflect.Value of a []T slice of length n
}

func newArrayFactory(t reflect.Type) func(n int) reflect.Value {
	return func(n int) reflect.Value {
		return reflect.MakeSlice(reflect.SliceOf(t), n, n)
	}
}

// registry maps Go types (and, separately, pair keys) to their
// ComponentInfo and array factory. One registry lives per World: per-World
// registration means distinct Worlds never share a component numbering,
// which avoids any cross-World process-global type id hazard.
type registry struct {
	byType map[reflect.Type]*componentType
	byID   map[EntityId]*componentType
	// pairSize resolves the payload size a pair (A, B) inherits from B: if B
	// is itself a registered sized component, the pair is sized like B; if B
	// is a tag or a plain target entity, the pair is a tag.
	pairSize map[EntityId]uintptr
}

func newRegistry() *registry {
	return &registry{
		byType:   make(map[reflect.Type]*componentType),
		byID:     make(map[EntityId]*componentType),
		pairSize: make(map[EntityId]uintptr),
	}
}

func (r *registry) lookup(t reflect.Type) (*componentType, bool) {
	ct, ok := r.byType[t]
	return ct, ok
}

func (r *registry) lookupID(id EntityId) (*componentType, bool) {
	ct, ok := r.byID[id]
	return ct, ok
}

func (r *registry) register(t reflect.Type, id EntityId) *componentType {
	size := t.Size()
	if isZeroSized(t) {
		size = 0
	}
	ct := &componentType{
		info:     ComponentInfo{ID: id, Size: size},
		goType:   t,
		newArray: newArrayFactory(t),
	}
	r.byType[t] = ct
	r.byID[id] = ct
	r.pairSize[id] = size
	return ct
}

// isZeroSized reports whether t is a marker/tag type: an empty struct or an
// array of zero length. Every registered type is checked against this rule.
func isZeroSized(t reflect.Type) bool {
	return t.Size() == 0
}

// pairInfo computes a pair's ComponentInfo: a pair (A, B) inherits B's size
// if B is a registered sized component, else it is a tag (size 0), even if A
// itself is sized. A or B may simply be target entities with no
// registration at all, which also yields a tag.
func (r *registry) pairInfo(first, second EntityId) ComponentInfo {
	id := MakePair(first, second)
	size, ok := r.pairSize[second]
	if !ok {
		size = 0
	}
	return ComponentInfo{ID: id, Size: size}
}
