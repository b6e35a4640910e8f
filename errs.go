package xlsx2json

import "errors"

var (
	ErrCatalog  = errors.New("cannot read catalog")
	ErrDocument = errors.New("cannot build document")
	ErrOutput   = errors.New("cannot write output")
)
