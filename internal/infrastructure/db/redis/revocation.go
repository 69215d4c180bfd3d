package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationSet tracks blocked subjects in Redis so their outstanding
// tokens are rejected before expiry.
// Key format: revoked:<user_id>
type RevocationSet struct {
	client *redis.Client
}

// NewRevocationSet creates a RevocationSet wrapping the given Redis client.
func NewRevocationSet(client *redis.Client) *RevocationSet {
	return &RevocationSet{client: client}
}

// Revoke records the subject. The entry expires after ttl: it only
// needs to outlive the newest token issued before the revocation.
func (r *RevocationSet) Revoke(ctx context.Context, userID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(userID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke subject: %w", err)
	}
	return nil
}

// Clear removes the subject's revocation entry (reactivation path).
func (r *RevocationSet) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("clear revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether the subject's tokens must be rejected.
func (r *RevocationSet) IsRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevocationSet) key(userID string) string {
	return "revoked:" + userID
}
