package ports

import (
	"context"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context, roles []domain.Role) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch, actor *domain.User) (*domain.User, error)
	Block(ctx context.Context, id string, actor *domain.User) (*domain.User, error)
	Unblock(ctx context.Context, id string, actor *domain.User) (*domain.User, error)
}
