package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed    = errors.New("malformed input")
	ErrUnterminated = fmt.Errorf("%w: unterminated tag", ErrMalformed)
	ErrEmptyTag     = fmt.Errorf("%w: empty tag", ErrMalformed)
	ErrBadName      = fmt.Errorf("%w: bad tag name", ErrMalformed)
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
