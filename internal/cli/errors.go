package cli

import "errors"

var (
	ErrUsage            = errors.New("usage")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidCode      = errors.New("MFA code must be a number")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrUnknownField     = errors.New("unknown record field")
	ErrInvalidTime      = errors.New("invalid time")
)
