package useragent

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInputKind = errors.New("user agent must be a string")
	ErrUnknownAttribute = errors.New("unknown user agent attribute")
)

// InvalidInputKindError is returned by Parse when the value is not a string.
// Kind holds the observed kind, e.g. "nil", "int", "map".
type InvalidInputKindError struct {
	Kind string
}

func (e *InvalidInputKindError) Error() string {
	return fmt.Sprintf("%s, %s given", ErrInvalidInputKind.Error(), e.Kind)
}

func (e *InvalidInputKindError) Is(target error) bool { return target == ErrInvalidInputKind }

// UnknownAttributeError is returned by UserAgent.Attr for names outside the fixed attribute set.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownAttribute.Error(), e.Name)
}

func (e *UnknownAttributeError) Is(target error) bool { return target == ErrUnknownAttribute }
