package catalog

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownColumn   = errors.New("unknown flag column")
)
