package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmptyName    = errors.New("name cannot be empty")
)

type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	role         Role
	createdAt    time.Time
	lastLoginAt  *time.Time
}

func NewUser(email, name, passwordHash string, role Role, now time.Time) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email, name, passwordHash string,
	role Role,
	createdAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		lastLoginAt:  lastLoginAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
