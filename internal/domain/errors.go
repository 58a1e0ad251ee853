package domain

import "errors"

var (
	// ErrNotFound means the named derivation was never registered.
	ErrNotFound = errors.New("derivation not found")
	// ErrDuplicateName means registration reused an existing name.
	ErrDuplicateName = errors.New("derivation already registered")
	// ErrUnknownParent means registration referenced an unregistered parent.
	ErrUnknownParent = errors.New("unknown parent derivation")
	// ErrMonotonicity means a registration's tier is more foundational
	// than one of its parents.
	ErrMonotonicity = errors.New("tier monotonicity violated")
	// ErrCycle means an edge insertion would make an entity reachable
	// from itself.
	ErrCycle = errors.New("derivation cycle")
	// ErrIndefeasible means an evidence update targeted an axiom or
	// bootstrap entity.
	ErrIndefeasible = errors.New("derivation is indefeasible")
)
