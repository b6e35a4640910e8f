package ir

import (
	"errors"
)

var (
	ErrEmptyPath    = errors.New("empty path")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrBadIndex     = errors.New("bad index")
	ErrNotFound     = errors.New("not found")
)
