// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrInvalidInput = errors.New("invalid input")

	// Translation errors
	ErrSourceTooLarge = errors.New("source text too large")
	ErrSyntax         = errors.New("syntax error")
)
