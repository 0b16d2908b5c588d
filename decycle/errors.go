package decycle

import (
	"errors"
	"fmt"
)

// Error sentinels for internal configuration failures: programmer errors
// such as a nil receiver, never data issues. A cancelled context is
// reported as ctx.Err() itself, not through a sentinel here.
var (
	// ErrInternal is the base error for internal configuration failures.
	ErrInternal = errors.New("internal decycle failure")

	// ErrNilConfiguration indicates a method was called on a nil *Configuration receiver.
	ErrNilConfiguration = fmt.Errorf("%w: nil *Configuration receiver", ErrInternal)
)
