// Package entity contains the core business objects of the project.
package entity

import "slices"

// Lifecycle is the tri-state deletion marker stored on every resource row.
type Lifecycle int8

const (
	// LifecycleActive is the normal, visible state.
	LifecycleActive Lifecycle = 0
	// LifecycleSoftDeleted hides the row but keeps its content for a later restore.
	LifecycleSoftDeleted Lifecycle = 1
	// LifecycleHardDeleted is terminal: content is scrubbed, the id stays for referential stability.
	LifecycleHardDeleted Lifecycle = 2
)

// String returns the string representation of the Lifecycle.
func (l Lifecycle) String() string {
	switch l {
	case LifecycleActive:
		return "active"
	case LifecycleSoftDeleted:
		return "soft_deleted"
	case LifecycleHardDeleted:
		return "hard_deleted"
	default:
		return "unknown"
	}
}

// IsValid checks if the Lifecycle is a known value.
func (l Lifecycle) IsValid() bool {
	return l >= LifecycleActive && l <= LifecycleHardDeleted
}

// IsActive reports whether the resource is visible.
func (l Lifecycle) IsActive() bool {
	return l == LifecycleActive
}

// TransitionSources returns the states from which a resource may move to target.
func TransitionSources(target Lifecycle) []Lifecycle {
	switch target {
	case LifecycleSoftDeleted:
		return []Lifecycle{LifecycleActive}
	case LifecycleActive:
		return []Lifecycle{LifecycleSoftDeleted}
	case LifecycleHardDeleted:
		return []Lifecycle{LifecycleActive, LifecycleSoftDeleted}
	default:
		return nil
	}
}

// CanTransitionTo reports whether l -> target is a legal transition.
func (l Lifecycle) CanTransitionTo(target Lifecycle) bool {
	return slices.Contains(TransitionSources(target), l)
}
