package validate

import "errors"

var (
	ErrSchema   = errors.New("invalid schema")
	ErrInstance = errors.New("invalid instance")
)
