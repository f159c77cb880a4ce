package ir

import (
	"errors"
	"fmt"
)

var (
	ErrBadName       = errors.New("bad node name")
	ErrInvalidHandle = errors.New("invalid handle")
	ErrNotFound      = errors.New("not found")
	ErrForm          = errors.New("bad document form")

	errNotString = fmt.Errorf("%w: text must be a scalar", ErrForm)
)
