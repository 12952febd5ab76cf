// Package errors is the single errors import for farmlink code.
// Sentinel checks come from the standard library; wrapping goes through pkg/errors so
// every wrapped error carries the stack of the call site that first saw it.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

//nolint:gochecknoglobals
var (
	New    = stderrors.New
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join

	Wrap         = pkgerrors.Wrap
	Wrapf        = pkgerrors.Wrapf
	WithStack    = pkgerrors.WithStack
	WithMessage  = pkgerrors.WithMessage
	WithMessagef = pkgerrors.WithMessagef
	Errorf       = pkgerrors.Errorf
	Cause        = pkgerrors.Cause
)
