package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a registered quiz taker
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser creates a new User instance. Username and email are trimmed.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     strings.TrimSpace(username),
		Email:        strings.TrimSpace(email),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

// Validate validates the user
func (u *User) Validate() error {
	var errs ValidationErrors
	if u.Username == "" {
		errs = append(errs, NewMissingFieldError("username"))
	}
	if u.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	}
	if u.PasswordHash == "" {
		errs = append(errs, NewMissingFieldError("password"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Session is the authenticated principal bound to a login.
type Session struct {
	ID        string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// UserRepository defines the interface for user data persistence.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	// GetUserByIdentifier matches the identifier against username or email.
	GetUserByIdentifier(ctx context.Context, identifier string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
