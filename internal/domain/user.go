package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role struct {
	ID      int
	Name    string
	Type    string
	IsAdmin bool
}

type User struct {
	ID        int
	Email     string
	Password  password
	RoleID    int
	IsAdmin   bool
	CreatedAt time.Time
}

type password struct {
	plaintext *string
	Hash      []byte
}

func (p *password) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), 12)
	if err != nil {
		return err
	}

	p.plaintext = &plaintext
	p.Hash = hash

	return nil
}

func (p *password) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))
	if err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return false, nil
		default:
			return false, err
		}
	}

	return true, nil
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetById(ctx context.Context, id int) (*User, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetById(ctx context.Context, id int) (*Role, error)
	GetAll(ctx context.Context) ([]Role, error)
	// GetDefault returns the role given to new users: the first non-admin role.
	GetDefault(ctx context.Context) (*Role, error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id int) error
}
