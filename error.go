package forms

import "errors"

var (
	ErrBadAny         = errors.New("bad any")
	ErrBadFormat      = errors.New("bad format")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrTooLarge       = errors.New("too large")
	ErrUnexpected     = errors.New("unexpected")
)
