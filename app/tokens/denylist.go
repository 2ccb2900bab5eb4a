package tokens

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records logged-out bearer tokens in Redis until they would have
// expired anyway. A nil *Denylist is valid and means revocation is disabled:
// tokens then simply age out.
type Denylist struct{ rdb *redis.Client }

func NewDenylist(rdb *redis.Client) *Denylist { return &Denylist{rdb: rdb} }

func key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}

// Revoke marks the token invalid for its remaining lifetime.
func (d *Denylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if d == nil || ttl <= 0 {
		return nil
	}
	return d.rdb.Set(ctx, key(token), "1", ttl).Err()
}

// IsRevoked reports whether the token was logged out. Redis errors count as
// not revoked so an unavailable denylist never locks everyone out.
func (d *Denylist) IsRevoked(ctx context.Context, token string) bool {
	if d == nil {
		return false
	}
	n, err := d.rdb.Exists(ctx, key(token)).Result()
	return err == nil && n > 0
}
