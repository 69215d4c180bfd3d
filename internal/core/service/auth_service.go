package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nimbusid/identity-api/internal/core/domain"
	"github.com/nimbusid/identity-api/internal/core/ports"
)

// AuthService orchestrates signup, login, and token revalidation.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenService
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens ports.TokenService, audit ports.AuditRecorder, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, logger: logger}
}

// Signup creates an account with the default role set and returns a
// token for the new user. A duplicate email surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        normalizeEmail(input.Email),
		FullName:     input.FullName,
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleUser},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("token issuance failed after signup")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user signed up")
	s.record(domain.AuditEntry{SubjectID: created.ID, Action: domain.AuditSignup})

	return &ports.AuthResponse{Token: token, User: created.Sanitized()}, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password fail differently so they can be logged apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		s.logger.Warn().Str("email", email).Msg("login attempt for unknown email")
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn().Str("user_id", user.ID).Msg("login attempt with wrong password")
		s.record(domain.AuditEntry{SubjectID: user.ID, Action: domain.AuditLoginFailed})
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEntry{SubjectID: user.ID, Action: domain.AuditLogin})

	return &ports.AuthResponse{Token: token, User: user.Sanitized()}, nil
}

// ValidateUser resolves a subject id to a live account. It is the only
// place that couples a structurally valid token with current account
// state, so every protected request must pass through it.
func (s *AuthService) ValidateUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	return user.Sanitized(), nil
}

// RevalidateToken re-issues a fresh token for an already-validated
// user. It touches no storage.
func (s *AuthService) RevalidateToken(user *domain.User) (*ports.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResponse{Token: token, User: user.Sanitized()}, nil
}

func (s *AuthService) record(entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	s.audit.Record(entry)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
