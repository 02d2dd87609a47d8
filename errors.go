package ecs

import "fmt"

// The error kinds a World may raise. Programmer-error kinds
// (DeadEntityError, ComponentMismatchError, ProtectedEntityError,
// RegistrationError) are always wrapped with bark.AddTrace at the point
// they're returned, tracing right before the return.

type DeadEntityError struct {
	Entity EntityId
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %d (gen %d) is not alive", e.Entity.RawIndex(), e.Entity.Generation())
}

type ComponentMismatchError struct {
	Entity    EntityId
	Component EntityId
	Reason    string
}

func (e ComponentMismatchError) Error() string {
	return fmt.Sprintf("component %d on entity %d: %s", e.Component, e.Entity.RawIndex(), e.Reason)
}

type ProtectedEntityError struct {
	Entity EntityId
}

func (e ProtectedEntityError) Error() string {
	return fmt.Sprintf("entity %d is tagged DoNotDelete", e.Entity.RawIndex())
}

type RegistrationError struct {
	TypeName string
}

func (e RegistrationError) Error() string {
	return fmt.Sprintf("component type %s used before registration", e.TypeName)
}

type EntityAlreadyAliveError struct {
	Entity EntityId
}

func (e EntityAlreadyAliveError) Error() string {
	return fmt.Sprintf("entity id %d is already live", e.Entity.RawIndex())
}

// DeferredMergeFailure reports one command that could no longer be applied
// at merge time. Merge as a whole always completes; these are
// delivered individually to the optional diagnostic sink, never returned.
type DeferredMergeFailure struct {
	Op  string
	Err error
}

func (e DeferredMergeFailure) Error() string {
	return fmt.Sprintf("deferred op %s skipped at merge: %v", e.Op, e.Err)
}
