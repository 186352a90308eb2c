package option

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrComposition marks a registry that cannot be flattened.
	ErrComposition = errors.New("conflicting field declarations")
	// ErrUnknownField is returned when setting a name the registry does not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupportedFormat is returned by LoadFile and WriteFile for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnbound is returned by an Object used before Bind.
	ErrUnbound = errors.New("object is not bound to a registry")
)

// FieldError wraps a decoder failure with the entity and field it happened on.
type FieldError struct {
	Entity string
	Key    string
	Name   string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Entity, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Path returns the dotted key path down to the innermost failing field,
// e.g. "title.style" or "zones[2].color".
func (e *FieldError) Path() string {
	path, _ := Locate(e)
	return path
}

// ItemError wraps a failure of one element of a list field.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Locate walks a chain of FieldError and ItemError values and returns the
// key path it describes together with the innermost error.
func Locate(err error) (string, error) {
	var b strings.Builder

	for {
		switch e := err.(type) {
		case *FieldError:
			if b.Len() > 0 {
				b.WriteByte('.')
			}

			b.WriteString(e.Key)
			err = e.Err
		case *ItemError:
			b.WriteString("[" + strconv.Itoa(e.Index) + "]")
			err = e.Err
		default:
			return b.String(), err
		}
	}
}

// CompositionError reports two declarations of a field that the
// precedence rule cannot reconcile.
type CompositionError struct {
	Entity string
	Field  string
	Reason string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("compose %s: field %q: %s", e.Entity, e.Field, e.Reason)
}

func (e *CompositionError) Unwrap() error {
	return ErrComposition
}
