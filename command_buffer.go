package ecs

import "reflect"

// command_buffer.go is the deferred-mutation queue: the familiar "enqueue
// while locked, replay in order on full unlock" shape, generalized from a
// fixed set of whole-entity creation/destruction/transfer operations to the
// per-entity structural ops this store needs (destroy, component add,
// component remove).
//
// Spawning a bare entity only ever appends a row to the root archetype and
// is always applied immediately, locked or not. A cursor that happens to be
// walking the root archetype at the same time (e.g. Each) is protected by
// its own row-count snapshot (see Cursor.Initialize), not by deferring the
// spawn: the snapshot bound means the freshly appended row is simply past
// the end of what this pass visits. Destroy, component-add, and
// component-remove all move rows between archetypes (or compact one via
// swap-remove), which would corrupt a snapshot bound taken before the move,
// so those three must defer while locked.

type opKind int

const (
	opDestroy opKind = iota
	opSet
	opUnset
)

type bufferedOp struct {
	kind    opKind
	entity  EntityId
	info    ComponentInfo
	value   reflect.Value
	unsetID EntityId
}

// commandBuffer accumulates bufferedOps while the world is locked and
// replays them in FIFO order once World.releaseLock sees every lock bit
// cleared. A failure on one op is reported via Config.Hooks.OnMergeFailure
// and the rest of the buffer still applies (skip and continue).
type commandBuffer struct {
	w   *World
	ops []bufferedOp
}

func newCommandBuffer(w *World) *commandBuffer {
	return &commandBuffer{w: w}
}

func (c *commandBuffer) enqueueDestroy(e EntityId) {
	c.ops = append(c.ops, bufferedOp{kind: opDestroy, entity: e})
}

func (c *commandBuffer) enqueueSet(e EntityId, info ComponentInfo, value reflect.Value) {
	c.ops = append(c.ops, bufferedOp{kind: opSet, entity: e, info: info, value: value})
}

func (c *commandBuffer) enqueueUnset(e EntityId, cid EntityId) {
	c.ops = append(c.ops, bufferedOp{kind: opUnset, entity: e, unsetID: cid})
}

func (c *commandBuffer) pending() int { return len(c.ops) }

// drain replays every queued op against the now-unlocked world, in order.
func (c *commandBuffer) drain() {
	if len(c.ops) == 0 {
		return
	}
	ops := c.ops
	c.ops = nil

	for _, op := range ops {
		var err error
		switch op.kind {
		case opDestroy:
			err = c.w.destroy(op.entity)
		case opSet:
			err = c.w.setComponentRaw(op.entity, op.info, op.value)
		case opUnset:
			err = c.w.unsetComponent(op.entity, op.unsetID)
		}
		if err != nil {
			if hook := Config.Hooks.OnMergeFailure; hook != nil {
				hook(DeferredMergeFailure{Op: opName(op.kind), Err: err})
			}
		}
	}
}

func opName(k opKind) string {
	switch k {
	case opDestroy:
		return "destroy"
	case opSet:
		return "set"
	case opUnset:
		return "unset"
	default:
		return "unknown"
	}
}
