package ports

import (
	"context"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

// AuditRepository persists security audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListBySubject(ctx context.Context, subjectID string, limit int) ([]*domain.AuditEntry, error)
}

// AuditService processes queued entries and serves trail queries.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
	Trail(ctx context.Context, subjectID string, limit int) ([]*domain.AuditEntry, error)
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Record never blocks the calling request path; under sustained
// pressure an implementation may drop entries instead.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
