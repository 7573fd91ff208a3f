package datacache

import (
	"errors"
	"fmt"
)

var (
	// ErrMaterializationFailed matches errors from Create.
	ErrMaterializationFailed = errors.New("materialization failed")
	// ErrPersistFailed matches errors from Write or from writing the container.
	ErrPersistFailed = errors.New("persist failed")
)

// Op identifies the cache operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpWrite  Op = "write"
)

// Error reports a failed cache operation for the named cache.
type Error struct {
	Name string
	Op   Op
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Name, e.kind(), e.Err)
}

// Unwrap exposes both the taxonomy sentinel and the cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	return []error{e.kind(), e.Err}
}

func (e *Error) kind() error {
	if e.Op == OpCreate {
		return ErrMaterializationFailed
	}
	return ErrPersistFailed
}
