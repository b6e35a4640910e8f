package token

import "errors"

var (
	ErrNotIndex = errors.New("not an index token")
)
