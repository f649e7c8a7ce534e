package container

import (
	"errors"
	"fmt"
)

// Kind classifies why a lifecycle operation failed.
type Kind string

const (
	// KindNotFound means the requested container does not exist. It is a
	// normal outcome of lookups, not a runtime failure.
	KindNotFound Kind = "not_found"

	// KindResolutionFailed means the requested image could not be made
	// available locally.
	KindResolutionFailed Kind = "resolution_failed"

	// KindOperationFailed means the daemon rejected or failed a container
	// operation.
	KindOperationFailed Kind = "operation_failed"

	// KindRuntimeUnavailable means the daemon itself could not be reached
	// or queried.
	KindRuntimeUnavailable Kind = "runtime_unavailable"
)

// Error is the failure type produced by lifecycle operations. It carries
// the failed operation and its target alongside the underlying cause.
type Error struct {
	Kind   Kind
	Op     string // failed operation, e.g. "create"
	Target string // image reference or container name/id
	Err    error  // underlying cause, nil for plain lookup misses
}

func (e *Error) Error() string {
	switch {
	case e.Target != "" && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	case e.Target != "":
		return fmt.Sprintf("%s %s", e.Op, e.Target)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err represents a missing container.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsResolutionFailed reports whether err represents a failed image resolution.
func IsResolutionFailed(err error) bool {
	return hasKind(err, KindResolutionFailed)
}

// IsOperationFailed reports whether err represents a rejected daemon operation.
func IsOperationFailed(err error) bool {
	return hasKind(err, KindOperationFailed)
}

// IsRuntimeUnavailable reports whether err represents an unreachable daemon.
func IsRuntimeUnavailable(err error) bool {
	return hasKind(err, KindRuntimeUnavailable)
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
