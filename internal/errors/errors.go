// Package errors re-exports the stdlib error tree helpers next to the
// pkg/errors stack-annotating constructors, so callers need one import.
package errors

import (
	"context"
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Error tree inspection.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Constructors that record a stack trace.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// Interrupted reports whether err stems from a cancelled or expired context
// rather than from the operation itself.
func Interrupted(err error) bool {
	return Is(err, context.Canceled) || Is(err, context.DeadlineExceeded)
}
