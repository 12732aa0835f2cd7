package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid adapter http address")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
