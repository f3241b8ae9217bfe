package services

import "errors"

// Sentinel errors for the recoverable failures handlers branch on with
// errors.Is. Anything else coming out of a service is a storage
// failure and surfaces as a 500.
var (
	// registration conflicts
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")

	// login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// flashcard creation against a missing category
	ErrCategoryNotFound = errors.New("category not found")
)
