package store

import "errors"

// Errors returned by the store.
var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateUser        = errors.New("username or email already registered")
	ErrDuplicateReference   = errors.New("order reference already taken")
	ErrPersistenceExhausted = errors.New("could not insert order after retries")
)
