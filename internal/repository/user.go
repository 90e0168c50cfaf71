package repository

import (
	"context"

	"github.com/artembaranov/accounts/internal/domain"
)

type UserRepository interface {
	// FindByEmail looks a user up by normalized email.
	// Returns domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserts a new user and returns it with the generated ID.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, email, passwordHash, fullName string) (*domain.User, error)
}
