package authorization

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = errors.New("authorization: username cannot be empty")
	ErrUsernameTooShort = errors.New("authorization: username must be at least 3 characters")
	ErrUsernameTooLong  = errors.New("authorization: username must be less than 50 characters")
	ErrPasswordRequired = errors.New("authorization: password cannot be empty")
	ErrPasswordTooShort = errors.New("authorization: password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("authorization: password must be less than 100 characters")
	ErrUsernameTaken    = errors.New("authorization: username already exists")

	// ErrInvalidCredentials covers both unknown-user and wrong-password so
	// login failures never reveal whether a username is registered.
	ErrInvalidCredentials = errors.New("authorization: invalid username or password")
)

// AuthService implements registration and login on top of the user store.
type AuthService struct {
	users *UserStore
}

// Register validates the credentials, hashes the password and inserts the
// account. The username is trimmed before every check; uniqueness is an
// exact case-sensitive match.
func (s *AuthService) Register(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if utf8.RuneCountInString(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(username) > 50 {
		return nil, ErrUsernameTooLong
	}
	if utf8.RuneCountInString(password) < 6 {
		return nil, ErrPasswordTooShort
	}
	if utf8.RuneCountInString(password) > 100 {
		return nil, ErrPasswordTooLong
	}

	taken, err := s.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the stored account when the credentials match.
// Any lookup miss or hash mismatch becomes the same ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authorization: look up user: %w", err)
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func isValidationError(err error) bool {
	for _, target := range []error{
		ErrUsernameRequired, ErrUsernameTooShort, ErrUsernameTooLong,
		ErrPasswordRequired, ErrPasswordTooShort, ErrPasswordTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
