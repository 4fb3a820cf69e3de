package users

import (
	"context"
	"errors"
)

// ErrNotFound indicates no record matches the lookup.
var ErrNotFound = errors.New("user not found")

// ErrDuplicate indicates an insert hit a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate user")

// Store abstracts user persistence. The backing table must enforce
// uniqueness of username and email itself; the service-level lookups
// are an early exit, not the guarantee.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Insert(ctx context.Context, u *User) error
}
