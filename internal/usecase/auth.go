package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/artembaranov/accounts/internal/domain"
	"github.com/artembaranov/accounts/internal/repository"
)

const minPasswordLen = 6

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *TokenIssuer
}

func NewAuthUsecase(users repository.UserRepository, tokens *TokenIssuer) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is the shared outcome of both flows: a fresh session token
// plus the public part of the user record.
type AuthResult struct {
	Token string
	User  domain.User
}

// Register validates the input, ensures email uniqueness, creates the
// user, and issues a session token. Validation runs before any database
// interaction.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)

	if email == "" || in.Password == "" || fullName == "" {
		return nil, domain.ErrFieldsRequired
	}
	if !validEmail(email) {
		return nil, domain.ErrEmailInvalid
	}
	// Length is in characters, not bytes: "парол" is 5 characters and
	// must be rejected even though it is 10 bytes.
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	// Check-then-insert; the unique index on users.email closes the race
	// between concurrent registrations (Create also maps the violation
	// to ErrEmailTaken).
	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check email: %w", err)
	}

	user, err := u.users.Create(ctx, email, HashPassword(in.Password), fullName)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: *user}, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password return the same error so the response cannot
// be used to probe which accounts exist.
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)

	if email == "" || in.Password == "" {
		return nil, domain.ErrFieldsRequired
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	digest := HashPassword(in.Password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: *user}, nil
}
