package ports

import (
	"context"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

// UserPatch carries the optional fields of a partial user update.
// Nil fields are left untouched.
type UserPatch struct {
	Email    *string
	FullName *string
	Password *string // plaintext at the service boundary, hashed before persistence
	Roles    []domain.Role
}

// UserRepository defines the persistence interface for user records.
// Email uniqueness is enforced by the backing store; a violation
// surfaces as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListByRoles returns users whose role set intersects roles.
	// An empty filter returns all users.
	ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch, actorID string) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool, actorID string) (*domain.User, error)
}
