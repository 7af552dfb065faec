package auth

import "errors"

var (
	ErrFieldsRequired     = errors.New("Name, email and password are required")
	ErrInvalidName        = errors.New("Name can only contain letters, spaces, hyphens and apostrophes")
	ErrInvalidEmail       = errors.New("Invalid email address")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters with a letter, a number and a special character")
	ErrEmailTaken         = errors.New("An account with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)
