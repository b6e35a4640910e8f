package schema

import "errors"

var (
	ErrLoad   = errors.New("schema load error")
	ErrFormat = errors.New("schema format error")
)
