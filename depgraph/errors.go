package depgraph

import (
	"errors"
	"fmt"
)

// Error sentinels for internal graph failures. These indicate programmer
// errors, not data issues; data issues never produce these.
var (
	// ErrInternal is the base error for internal graph failures.
	ErrInternal = errors.New("internal depgraph failure")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = fmt.Errorf("%w: nil *Graph receiver", ErrInternal)

	// ErrEmptyClassName indicates an empty class name was passed to Add or Connect.
	ErrEmptyClassName = fmt.Errorf("%w: empty class name", ErrInternal)
)
