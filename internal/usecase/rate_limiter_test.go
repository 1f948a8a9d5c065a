package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vendor_registration/internal/adapter/persistence/repository"
	"vendor_registration/internal/domain/entities"
	mock_interfaces "vendor_registration/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(clock *fakeClock) (*RateLimiter, *repository.MemoryTTLStore) {
	store := repository.NewMemoryTTLStoreWithClock(clock.Now)
	l := NewRateLimiterWithClock(store,
		RateWindow{Window: time.Hour, Max: 10},
		RateWindow{Window: 24 * time.Hour, Max: 3},
		clock.Now,
	)
	return l, store
}

func TestRateLimiter_CeilingWithinWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	l, _ := newTestLimiter(clock)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		d := l.CheckAndIncrement(ctx, "10.0.0.1", entities.RateScopeIP)
		if !d.Allowed {
			t.Fatalf("request %d should be allowed", i)
		}
		if d.Remaining != 10-i {
			t.Fatalf("request %d: expected remaining %d, got %d", i, 10-i, d.Remaining)
		}
		clock.Advance(time.Minute)
	}

	d := l.CheckAndIncrement(ctx, "10.0.0.1", entities.RateScopeIP)
	if d.Allowed {
		t.Fatalf("11th request should be denied")
	}
	// 10 minutes of the one-hour window have elapsed.
	if d.RetryAfterSeconds != 50*60 {
		t.Fatalf("expected retry after 3000s, got %d", d.RetryAfterSeconds)
	}

	if d := l.CheckAndIncrement(ctx, "10.0.0.2", entities.RateScopeIP); !d.Allowed {
		t.Fatalf("other identities must not be affected")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	l, _ := newTestLimiter(clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		l.CheckAndIncrement(ctx, "a@b.co", entities.RateScopeEmail)
	}
	if d := l.CheckAndIncrement(ctx, "a@b.co", entities.RateScopeEmail); d.Allowed || d.RetryAfterSeconds <= 0 {
		t.Fatalf("expected denial with positive retry-after, got %+v", d)
	}

	clock.Advance(24*time.Hour + time.Second)

	d := l.CheckAndIncrement(ctx, "a@b.co", entities.RateScopeEmail)
	if !d.Allowed || d.Remaining != 2 {
		t.Fatalf("expected reset counter after window, got %+v", d)
	}
}

func TestRateLimiter_StoredCounterLayout(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	l, store := newTestLimiter(clock)
	ctx := context.Background()

	l.CheckAndIncrement(ctx, "10.0.0.1", entities.RateScopeIP)
	clock.Advance(time.Minute)
	l.CheckAndIncrement(ctx, "10.0.0.1", entities.RateScopeIP)

	raw, found, err := store.Get(ctx, "ratelimit:ip:10.0.0.1")
	if err != nil || !found {
		t.Fatalf("expected stored counter, found=%v err=%v", found, err)
	}
	var c entities.RateCounter
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("invalid counter json: %v", err)
	}
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC).UnixMilli()
	if c.Count != 2 || c.Timestamp != start {
		t.Fatalf("expected count 2 and original window start, got %+v", c)
	}
}

func TestRateLimiter_CheckShortCircuitsOnIP(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := repository.NewMemoryTTLStoreWithClock(clock.Now)
	l := NewRateLimiterWithClock(store,
		RateWindow{Window: time.Hour, Max: 1},
		RateWindow{Window: time.Hour, Max: 5},
		clock.Now,
	)
	ctx := context.Background()

	if d := l.Check(ctx, "1.1.1.1", "Vendor@Example.com "); !d.Allowed {
		t.Fatalf("first request should pass")
	}
	d := l.Check(ctx, "1.1.1.1", "vendor@example.com")
	if d.Allowed || d.Scope != entities.RateScopeIP {
		t.Fatalf("expected ip denial, got %+v", d)
	}

	raw, _, _ := store.Get(ctx, "ratelimit:email:vendor@example.com")
	var c entities.RateCounter
	_ = json.Unmarshal([]byte(raw), &c)
	if c.Count != 1 {
		t.Fatalf("email scope must not be consumed by an ip denial, count=%d", c.Count)
	}
}

func TestRateLimiter_FailOpen(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITTLStore(ctrl)
		l := NewRateLimiter(store, RateWindow{Window: time.Hour, Max: 1}, RateWindow{Window: time.Hour, Max: 1})

		store.EXPECT().Get(gomock.Any(), "ratelimit:ip:1.1.1.1").Return("", false, errors.New("down"))

		if d := l.CheckAndIncrement(context.Background(), "1.1.1.1", entities.RateScopeIP); !d.Allowed {
			t.Fatalf("expected fail-open on read error")
		}
	})

	t.Run("write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITTLStore(ctrl)
		l := NewRateLimiter(store, RateWindow{Window: time.Hour, Max: 1}, RateWindow{Window: time.Hour, Max: 1})

		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", false, nil)
		store.EXPECT().Set(gomock.Any(), "ratelimit:ip:1.1.1.1", gomock.Any(), time.Hour).Return(errors.New("down"))

		if d := l.CheckAndIncrement(context.Background(), "1.1.1.1", entities.RateScopeIP); !d.Allowed {
			t.Fatalf("expected fail-open on write error")
		}
	})

	t.Run("corrupt counter resets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITTLStore(ctrl)
		l := NewRateLimiter(store, RateWindow{Window: time.Hour, Max: 1}, RateWindow{Window: time.Hour, Max: 1})

		store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("not-json", true, nil)
		store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil)

		if d := l.CheckAndIncrement(context.Background(), "1.1.1.1", entities.RateScopeIP); !d.Allowed {
			t.Fatalf("expected corrupt counter to be replaced")
		}
	})
}

func TestRetryAfter(t *testing.T) {
	now := time.Now()
	if got := retryAfter(now.Add(1500*time.Millisecond), now); got != 2 {
		t.Fatalf("expected ceil to 2, got %d", got)
	}
	if got := retryAfter(now.Add(-time.Second), now); got != 1 {
		t.Fatalf("expected minimum of 1, got %d", got)
	}
}
