package entities

import "time"

// RateScope identifies which identity a rate counter is tracking.
type RateScope string

const (
	RateScopeIP    RateScope = "ip"
	RateScopeEmail RateScope = "email"
)

// RateCounter is the per-identity request counter kept in the TTL store.
//
// Storage model (TTL store):
//   - key: ratelimit:<scope>:<identity>
//   - value: {"count":n,"timestamp":<unix millis of window start>}
//   - TTL: window length
type RateCounter struct {
	Count     int   `json:"count"`
	Timestamp int64 `json:"timestamp"`
}

func (c RateCounter) WindowStart() time.Time {
	return time.UnixMilli(c.Timestamp)
}
