package ecs

import (
	"reflect"
	"sort"
	"strings"
)

// entity.go treats EntityId as the entity "view" and AccessibleComponent[T]
// as the generic, type-safe accessor: one definition covering Set/Get/Has/
// Unset plus cursor-local reads (GetFromCursor/CheckCursor).

// AccessibleComponent is a type-safe handle to a registered component type,
// returned by RegisterComponent and used for every Set/Get/Has/Unset call
// against that type.
type AccessibleComponent[T any] struct {
	info ComponentInfo
}

// RegisterComponent registers T against w if it hasn't been seen before
// (components are themselves entities, so registration mints a fresh
// EntityId) and returns its accessor. Calling it again for the same type
// and World returns the same accessor; it is always safe to call from
// Set/Get call sites instead of caching the accessor yourself.
func RegisterComponent[T any](w *World) AccessibleComponent[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if ct, ok := w.registry.lookup(t); ok {
		return AccessibleComponent[T]{info: ct.info}
	}
	id := w.spawn()
	ct := w.registry.register(t, id)
	return AccessibleComponent[T]{info: ct.info}
}

// ID returns the component's own entity id.
func (ac AccessibleComponent[T]) ID() EntityId { return ac.info.ID }

// Set attaches value to e, migrating e to a new archetype the first time
// this component is attached.
func (ac AccessibleComponent[T]) Set(w *World, e EntityId, value T) error {
	return w.setComponentRaw(e, ac.info, reflect.ValueOf(value))
}

// Get returns e's value for this component, failing with
// ComponentMismatchError if e doesn't carry it.
func (ac AccessibleComponent[T]) Get(w *World, e EntityId) (T, error) {
	var zero T
	v, ok := w.getComponentPtr(e, ac.info.ID)
	if !ok {
		return zero, traceErr(ComponentMismatchError{Entity: e, Component: ac.info.ID, Reason: "not present"})
	}
	return v.Interface().(T), nil
}

// TryGet is the ok-pattern counterpart of Get, for hot paths that would
// rather branch than handle an error.
func (ac AccessibleComponent[T]) TryGet(w *World, e EntityId) (T, bool) {
	var zero T
	v, ok := w.getComponentPtr(e, ac.info.ID)
	if !ok {
		return zero, false
	}
	return v.Interface().(T), true
}

// Has reports whether e carries this component.
func (ac AccessibleComponent[T]) Has(w *World, e EntityId) bool {
	return w.has(e, ac.info.ID)
}

// Unset removes this component from e, migrating e to the archetype reached
// via the signature's edgesRemove entry.
func (ac AccessibleComponent[T]) Unset(w *World, e EntityId) error {
	return w.unsetComponent(e, ac.info.ID)
}

// GetFromCursor reads this component at the cursor's current position
// without a second EntityIndex lookup.
func (ac AccessibleComponent[T]) GetFromCursor(c *Cursor) (T, bool) {
	var zero T
	a, row, ok := c.currentPos()
	if !ok {
		return zero, false
	}
	col, ok := a.columnIndex(ac.info.ID)
	if !ok {
		return zero, false
	}
	chk, slot := a.chunkOf(row)
	v := chk.slotFor(col, slot)
	if !v.IsValid() {
		return zero, false
	}
	return v.Interface().(T), true
}

// CheckCursor reports whether the entity at the cursor's current position
// carries this component.
func (ac AccessibleComponent[T]) CheckCursor(c *Cursor) bool {
	a, _, ok := c.currentPos()
	if !ok {
		return false
	}
	_, has := a.columnIndex(ac.info.ID)
	return has
}

// SetPair attaches a relationship pair (relation, target) to e, with a
// payload inherited from whatever sized component target happens to be
// registered as (registry.pairInfo documents the exact rule). Use the
// tag-only SetRelation below when the pair carries no data.
func SetPair[V any](w *World, e, relation, target EntityId, value V) error {
	info := w.registry.pairInfo(relation, target)
	return w.setComponentRaw(e, info, reflect.ValueOf(value))
}

// SetRelation attaches a data-free relationship pair (relation, target) to
// e, e.g. SetRelation(w, child, likesTag, friend).
func SetRelation(w *World, e, relation, target EntityId) error {
	info := w.registry.pairInfo(relation, target)
	return w.setComponentRaw(e, info, reflect.Value{})
}

// UnsetRelation removes a (relation, target) pair from e.
func UnsetRelation(w *World, e, relation, target EntityId) error {
	return w.unsetComponent(e, MakePair(relation, target))
}

// HasRelation reports whether e carries a (relation, target) pair; target
// may be Wildcard to ask "does e have any relation-kind pair at all".
func HasRelation(w *World, e, relation, target EntityId) bool {
	return w.has(e, MakePair(relation, target))
}

// Target returns the target half of e's (relation, Wildcard) pair, if any.
func Target(w *World, e, relation EntityId) (EntityId, bool) {
	return w.target(e, relation)
}

// SetParent establishes a ChildOf(parent) relationship on child, so that
// destroying parent cascades to destroy child.
func SetParent(w *World, child, parent EntityId) error {
	return SetRelation(w, child, w.childOfID(), parent)
}

// GetParent returns child's ChildOf target, if any.
func GetParent(w *World, child EntityId) (EntityId, bool) {
	if w.childOf == 0 {
		return 0, false
	}
	return w.target(child, w.childOf)
}

// ProtectFromDestroy tags e so World.Destroy refuses it with
// ProtectedEntityError instead of removing it.
func ProtectFromDestroy(w *World, e EntityId) error {
	return w.setComponentRaw(e, ComponentInfo{ID: w.doNotDeleteID()}, reflect.Value{})
}

// Components returns e's current component signature (including any pair
// components), or nil if e isn't alive.
func Components(w *World, e EntityId) []EntityId {
	rec, ok := w.entities.get(e)
	if !ok {
		return nil
	}
	return append([]EntityId(nil), rec.archetype.sig...)
}

// ComponentsAsString renders e's component ids as a sorted, bracketed list,
// a debug helper for logging an entity's shape.
func ComponentsAsString(w *World, e EntityId) string {
	ids := Components(w, e)
	if len(ids) == 0 {
		return "[]"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = idLabel(id)
	}
	sort.Strings(names)
	return "[" + strings.Join(names, ", ") + "]"
}

func idLabel(id EntityId) string {
	if !id.IsPair() {
		return formatUint(uint64(id))
	}
	return "(" + formatUint(uint64(id.PairFirst())) + "," + formatUint(uint64(id.PairSecond())) + ")"
}

func formatUint(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// IsAlive reports whether e is currently live in w.
func IsAlive(w *World, e EntityId) bool {
	return w.entities.isAlive(e)
}

// Destroy removes e (and any ChildOf cascade) from w.
func Destroy(w *World, e EntityId) error {
	return w.destroy(e)
}

// Spawn creates a bare entity with no components.
func Spawn(w *World) EntityId {
	return w.spawn()
}

// Each iterates every live entity in w regardless of component set, calling
// fn for each. It stops early if fn returns false. The iteration is a plain
// Cursor pass over a term-less query, which matches every archetype, so the
// usual deferred-mutation rules for structural changes issued from fn apply.
func Each(w *World, fn func(EntityId) bool) {
	q := NewQuery().Build(w)
	c := newCursor(w, q)
	for e := range c.Entities() {
		if !fn(e) {
			break
		}
	}
}

// SpawnNamed creates a bare entity and registers it under name in w's name
// cache, failing only if the cache is at capacity.
func SpawnNamed(w *World, name string) (EntityId, error) {
	id := w.spawn()
	if _, err := w.names.Register(name, id); err != nil {
		return id, traceErr(err)
	}
	return id, nil
}

// LookupNamed resolves a previously SpawnNamed entity by name.
func LookupNamed(w *World, name string) (EntityId, bool) {
	idx, ok := w.names.GetIndex(name)
	if !ok {
		return 0, false
	}
	return *w.names.GetItem(idx), true
}
