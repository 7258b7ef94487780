package xcscore

import "errors"

// Callers test for these with errors.Is; call sites wrap them with detail.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidInput    = errors.New("invalid input")
	ErrParse           = errors.New("parse error")
)
