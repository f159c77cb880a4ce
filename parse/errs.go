package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/tagdoc/token"
)

var (
	ErrMalformed     = token.ErrMalformed
	ErrEmptyDocument = errors.New("empty document")

	ErrMismatched  = fmt.Errorf("%w: mismatched closing tag", ErrMalformed)
	ErrUnclosed    = fmt.Errorf("%w: tags left open", ErrMalformed)
	ErrStrayText   = fmt.Errorf("%w: text outside of any tag", ErrMalformed)
	ErrMultiRoot   = fmt.Errorf("%w: more than one root element", ErrMalformed)
	ErrUnopenedTag = fmt.Errorf("%w: closing tag without opening tag", ErrMalformed)
)
