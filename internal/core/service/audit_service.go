package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nimbusid/identity-api/internal/core/domain"
	"github.com/nimbusid/identity-api/internal/core/ports"
)

const defaultAuditLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the processor invoked by the audit dispatcher
// workers for each dequeued entry.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process validates and persists a single audit entry.
func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if entry.SubjectID == "" || entry.Action == "" {
		return fmt.Errorf("process audit entry: missing subject or action")
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("process audit entry: %w", err)
	}

	s.log.Debug().
		Str("subject_id", entry.SubjectID).
		Str("action", string(entry.Action)).
		Msg("audit entry recorded")

	return nil
}

// Trail returns the most recent audit entries for a subject.
func (s *auditService) Trail(ctx context.Context, subjectID string, limit int) ([]*domain.AuditEntry, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return s.repo.ListBySubject(ctx, subjectID, limit)
}
