package interfaces

import (
	"context"
	"time"
)

// ITTLStore abstracts the shared key-value store that holds the cached access
// token and the rate counters.
//
// Expiry is part of the contract: a value written with a TTL must not be
// returned by Get once the TTL has elapsed. Backends without native TTL
// emulate it with a stored expiry timestamp checked on read.
type ITTLStore interface {
	// Get returns found=false (and no error) when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
}
