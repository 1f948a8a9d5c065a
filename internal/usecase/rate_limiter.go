package usecase

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"vendor_registration/internal/domain/entities"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
)

// RateWindow is the ceiling of one scope: at most Max requests per Window.
type RateWindow struct {
	Window time.Duration
	Max    int
}

// RateDecision is the outcome of one rate-limit check.
type RateDecision struct {
	Allowed           bool
	Scope             entities.RateScope
	RetryAfterSeconds int
	Remaining         int
}

// IRateLimiter guards the registration endpoint against abuse.
type IRateLimiter interface {
	CheckAndIncrement(ctx context.Context, identity string, scope entities.RateScope) RateDecision
	Check(ctx context.Context, ip, email string) RateDecision
}

// RateLimiter keeps fixed-window counters per identity in the TTL store.
//
// Any store failure allows the request: the registration path stays available
// when the store is degraded. Increments are read-modify-write without a lock,
// so concurrent requests may under-count slightly.
type RateLimiter struct {
	store   interfaces.ITTLStore
	windows map[entities.RateScope]RateWindow
	now     func() time.Time
}

var _ IRateLimiter = (*RateLimiter)(nil)

func NewRateLimiter(store interfaces.ITTLStore, ip, email RateWindow) *RateLimiter {
	return NewRateLimiterWithClock(store, ip, email, time.Now)
}

func NewRateLimiterWithClock(store interfaces.ITTLStore, ip, email RateWindow, now func() time.Time) *RateLimiter {
	return &RateLimiter{
		store: store,
		windows: map[entities.RateScope]RateWindow{
			entities.RateScopeIP:    ip,
			entities.RateScopeEmail: email,
		},
		now: now,
	}
}

func RateLimitKey(scope entities.RateScope, identity string) string {
	return "ratelimit:" + string(scope) + ":" + identity
}

// Check evaluates the address scope first. A denial there returns at once so
// the email counter is not consumed by a request that is rejected anyway.
func (l *RateLimiter) Check(ctx context.Context, ip, email string) RateDecision {
	if d := l.CheckAndIncrement(ctx, ip, entities.RateScopeIP); !d.Allowed {
		return d
	}
	return l.CheckAndIncrement(ctx, normalizeEmail(email), entities.RateScopeEmail)
}

func (l *RateLimiter) CheckAndIncrement(ctx context.Context, identity string, scope entities.RateScope) RateDecision {
	log := logger.FromContext(ctx).With(zap.String("scope", string(scope)))

	w, ok := l.windows[scope]
	if !ok || w.Max <= 0 || w.Window <= 0 || identity == "" {
		return RateDecision{Allowed: true, Scope: scope}
	}

	key := RateLimitKey(scope, identity)
	now := l.now()

	raw, found, err := l.store.Get(ctx, key)
	if err != nil {
		log.Warn("[ratelimit][store] read failed, allowing request", zap.Error(err))
		return RateDecision{Allowed: true, Scope: scope}
	}

	var counter entities.RateCounter
	if found {
		if err := json.Unmarshal([]byte(raw), &counter); err != nil {
			log.Warn("[ratelimit][store] corrupt counter, resetting", zap.Error(err))
			found = false
		}
	}

	if !found || now.Sub(counter.WindowStart()) > w.Window {
		return l.write(ctx, key, scope, entities.RateCounter{Count: 1, Timestamp: now.UnixMilli()}, w)
	}

	if counter.Count >= w.Max {
		return RateDecision{
			Allowed:           false,
			Scope:             scope,
			RetryAfterSeconds: retryAfter(counter.WindowStart().Add(w.Window), now),
		}
	}

	counter.Count++
	return l.write(ctx, key, scope, counter, w)
}

func (l *RateLimiter) write(ctx context.Context, key string, scope entities.RateScope, c entities.RateCounter, w RateWindow) RateDecision {
	d := RateDecision{Allowed: true, Scope: scope, Remaining: w.Max - c.Count}

	b, err := json.Marshal(c)
	if err != nil {
		return d
	}
	if err := l.store.Set(ctx, key, string(b), w.Window); err != nil {
		logger.FromContext(ctx).Warn("[ratelimit][store] write failed, allowing request",
			zap.String("scope", string(scope)), zap.Error(err))
	}
	return d
}

func retryAfter(resetAt, now time.Time) int {
	secs := int(math.Ceil(resetAt.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
