package ports

import (
	"context"
	"time"
)

// RevocationList tracks subjects whose outstanding tokens must be
// rejected before expiry. Entries only need to outlive the newest token
// issued before the revocation, so a TTL equal to the token lifetime
// is sufficient.
type RevocationList interface {
	Revoke(ctx context.Context, userID string, ttl time.Duration) error
	Clear(ctx context.Context, userID string) error
	IsRevoked(ctx context.Context, userID string) (bool, error)
}
