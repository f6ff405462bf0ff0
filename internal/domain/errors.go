package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID indicates an identifier that does not match the store id format.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidCategory indicates a category outside the restricted listing allow-list.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidPayload indicates a malformed request payload.
	ErrInvalidPayload = errors.New("invalid payload")
)
