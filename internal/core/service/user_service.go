package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nimbusid/identity-api/internal/core/domain"
	"github.com/nimbusid/identity-api/internal/core/ports"
)

// UserService implements user administration: listing, profile updates,
// and the block/unblock status flip.
type UserService struct {
	repo     ports.UserRepository
	hasher   *PasswordHasher
	revoked  ports.RevocationList
	audit    ports.AuditRecorder
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, revoked ports.RevocationList, audit ports.AuditRecorder, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &UserService{repo: repo, hasher: hasher, revoked: revoked, audit: audit, tokenTTL: tokenTTL, logger: logger}
}

// List returns users whose role set intersects roles; an empty filter
// returns everyone.
func (s *UserService) List(ctx context.Context, roles []domain.Role) ([]*domain.User, error) {
	users, err := s.repo.ListByRoles(ctx, roles)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = u.Sanitized()
	}
	return users, nil
}

// Update applies a partial patch to the user, recording the actor as
// lastUpdateBy. A plaintext password in the patch is hashed before it
// reaches the repository, and a patched email is lowercased so login
// lookups keep matching it.
func (s *UserService) Update(ctx context.Context, id string, patch ports.UserPatch, actor *domain.User) (*domain.User, error) {
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	updated, err := s.repo.Update(ctx, id, patch, actor.ID)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEntry{SubjectID: id, Action: domain.AuditUpdate, ActorID: actor.ID})

	return updated.Sanitized(), nil
}

// Block deactivates the account and revokes the subject so outstanding
// tokens stop working immediately rather than at expiry.
func (s *UserService) Block(ctx context.Context, id string, actor *domain.User) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, false, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.revoked.Revoke(ctx, id, s.tokenTTL); err != nil {
		// The account is already inactive; ValidateUser still rejects it
		// even if the revocation write failed.
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to revoke blocked user")
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user blocked")
	s.record(domain.AuditEntry{SubjectID: id, Action: domain.AuditBlock, ActorID: actor.ID})

	return user.Sanitized(), nil
}

// Unblock reactivates the account and clears its revocation entry.
func (s *UserService) Unblock(ctx context.Context, id string, actor *domain.User) (*domain.User, error) {
	user, err := s.repo.SetActive(ctx, id, true, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.revoked.Clear(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to clear revocation")
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user unblocked")
	s.record(domain.AuditEntry{SubjectID: id, Action: domain.AuditUnblock, ActorID: actor.ID})

	return user.Sanitized(), nil
}

func (s *UserService) record(entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.Timestamp = time.Now().UTC()
	s.audit.Record(entry)
}
