package repository

import "time"

// expiresAt converts a TTL into an absolute deadline. A non-positive TTL
// means the entry never expires.
func expiresAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

func isExpired(now, deadline time.Time) bool {
	return !deadline.IsZero() && !now.Before(deadline)
}
