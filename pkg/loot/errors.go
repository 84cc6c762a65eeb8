package loot

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument is matched by every *MissingArgumentError.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrUnknownKind is matched by every *UnknownKindError.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// MissingArgumentError reports a required field that was not supplied for a kind.
type MissingArgumentError struct {
	Kind  string
	Field string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required argument %q", e.Kind, e.Field)
}

func (e *MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// UnknownKindError reports a tag not present in a translator's dispatch table.
// Family is one of "table", "condition", "function" or "entry".
type UnknownKindError struct {
	Family string
	Kind   string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown %s kind %q", e.Family, e.Kind)
}

func (e *UnknownKindError) Is(target error) bool { return target == ErrUnknownKind }

// InvalidArgumentError reports a supplied field whose value cannot be rendered.
type InvalidArgumentError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Kind, e.Field, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
