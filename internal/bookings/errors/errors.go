package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrCodeExists = errors.New("booking code already exists")
)
