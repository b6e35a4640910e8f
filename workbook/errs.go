package workbook

import "errors"

var (
	ErrOpen      = errors.New("cannot open workbook")
	ErrReference = errors.New("unsupported reference")
)
