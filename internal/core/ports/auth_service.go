package ports

import (
	"context"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

// SignupInput carries the transient signup credentials. The plaintext
// password is hashed before persistence and never stored as-is.
type SignupInput struct {
	Email    string
	Password string
	FullName string
}

// AuthResponse pairs a freshly issued token with the sanitized user it
// was issued for.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	// ValidateUser is the single authority for "may this subject act
	// right now". Every token-authenticated request must go through it.
	ValidateUser(ctx context.Context, id string) (*domain.User, error)
	RevalidateToken(user *domain.User) (*AuthResponse, error)
}
