package transform

import "errors"

var (
	ErrRule    = errors.New("bad transform rule")
	ErrCommand = errors.New("transform command failed")
	ErrEval    = errors.New("transform expression failed")
)
