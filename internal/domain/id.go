package domain

import "github.com/google/uuid"

// ValidateID checks the identifier against the store's id format before any
// store access. Malformed references are a client error, not a store error.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
