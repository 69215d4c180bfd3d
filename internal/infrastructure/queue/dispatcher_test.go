package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nimbusid/identity-api/internal/core/domain"
)

type captureAuditService struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (s *captureAuditService) Process(_ context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *captureAuditService) Trail(context.Context, string, int) ([]*domain.AuditEntry, error) {
	return nil, nil
}

func (s *captureAuditService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *captureAuditService) snapshot() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func waitFor(t *testing.T, want int, svc *captureAuditService) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.count() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d entries, got %d", want, svc.count())
}

func TestDispatcher_DeliversEntries(t *testing.T) {
	svc := &captureAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Record(domain.AuditEntry{
			SubjectID: "u1",
			Action:    domain.AuditLogin,
			Timestamp: time.Now().UTC(),
		})
	}

	waitFor(t, 20, svc)
}

func TestDispatcher_SameSubjectKeepsOrder(t *testing.T) {
	svc := &captureAuditService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Entries for one subject land on one worker, so their relative
	// order survives the fan-out.
	actions := []domain.AuditAction{domain.AuditSignup, domain.AuditLogin, domain.AuditBlock, domain.AuditUnblock}
	for _, a := range actions {
		d.Record(domain.AuditEntry{SubjectID: "u1", Action: a, Timestamp: time.Now().UTC()})
	}

	waitFor(t, len(actions), svc)

	got := svc.snapshot()
	for i, a := range actions {
		if got[i].Action != a {
			t.Fatalf("entry %d: expected %s, got %s", i, a, got[i].Action)
		}
	}
}

func TestDispatcher_RecordNeverBlocksWhenBufferFull(t *testing.T) {
	svc := &captureAuditService{}
	// Workers never started: nothing drains the channel, so recording
	// past the buffer capacity must drop instead of stalling.
	d := NewDispatcher(1, svc, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+50; i++ {
			d.Record(domain.AuditEntry{SubjectID: "u1", Action: domain.AuditLogin, Timestamp: time.Now().UTC()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Record blocked on a full worker channel")
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	svc := &captureAuditService{}
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Record(domain.AuditEntry{SubjectID: "u1", Action: domain.AuditLogin, Timestamp: time.Now().UTC()})
	waitFor(t, 1, svc)

	cancel()
	// After cancellation workers drain nothing further; recording must
	// still not block the caller.
	done := make(chan struct{})
	go func() {
		d.Record(domain.AuditEntry{SubjectID: "u2", Action: domain.AuditLogin, Timestamp: time.Now().UTC()})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Record blocked after shutdown")
	}
}
