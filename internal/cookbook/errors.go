package cookbook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned for malformed entry payloads.
	ErrInvalidShape = errors.New("invalid entry")
	// ErrDuplicateName is returned when an entry name is already registered.
	ErrDuplicateName = errors.New("duplicate entry name")
	// ErrNotFound is returned when a looked-up name is not registered.
	ErrNotFound = errors.New("entry not found")
	// ErrNotARecipe is returned when a summary is requested for an ingredient.
	ErrNotARecipe = errors.New("entry is not a recipe")
	// ErrMissingDependency is returned when a recipe references an
	// unregistered entry at summary time.
	ErrMissingDependency = errors.New("missing dependency")
	// ErrCyclicDependency is returned when a recipe transitively requires
	// itself.
	ErrCyclicDependency = errors.New("cyclic dependency")
	// ErrOutOfRange is returned when a summary total cannot be represented.
	ErrOutOfRange = errors.New("summary out of range")
)

// Error pairs one of the sentinel classes above with a client-facing message.
// Ref names the entry the failure is about, if any.
type Error struct {
	Class error
	Msg   string
	Ref   string
}

// Errorf builds an *Error of the given class.
func Errorf(class error, ref, format string, args ...any) *Error {
	return &Error{Class: class, Msg: fmt.Sprintf(format, args...), Ref: ref}
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Class }
