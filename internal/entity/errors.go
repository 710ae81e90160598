package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidStatus   = errors.New("invalid status transition")
	ErrUnknownFunction = errors.New("unknown function")
	ErrProvider        = errors.New("provider error")
)
