package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// Registration validation failures, in the order they are checked.
	ErrFieldsRequired   = errors.New("all fields are required")
	ErrEmailInvalid     = errors.New("email has invalid format")
	ErrPasswordTooShort = errors.New("password is shorter than 6 characters")
	ErrEmailTaken       = errors.New("email is already registered")

	// Login failures. Unknown email and wrong password deliberately
	// collapse into this single error so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
