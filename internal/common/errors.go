// Package common defines sentinel errors shared by the ordercli layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input errors.
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidUsername = errors.New("invalid username")

	// Order errors.
	ErrItemNotFound = errors.New("item not found")
	ErrEmptyOrder   = errors.New("no orders")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
