package ports

import (
	"context"

	"github.com/pneumatic/guestbook/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	// FindByUsername performs a case-sensitive exact-match lookup and
	// returns domain.ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user row. A concurrent insert of the same
	// username surfaces as domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// List returns all users ordered by id. Used by the admin shell.
	List(ctx context.Context) ([]domain.User, error)
}

// RoleRepository exposes the roles table to the admin shell. No request
// handler touches roles.
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
}
