package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
)

const (
	AccessTokenKey         = "token:access"
	DefaultAccessTokenTTL  = 55 * time.Minute
	emptyAccessTokenReason = "identity provider returned no access token"
)

var ErrAuthentication = errors.New("authentication with crm failed")

// ITokenProvider hands out the bearer credential for CRM calls.
type ITokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// TokenCache keeps the CRM access token in the shared TTL store.
//
// The cache TTL is shorter than the provider lifetime so a cached token is
// never expired when used. The store is optional for correctness: read and
// write failures fall back to a direct exchange. Concurrent misses may both
// exchange; the second write simply overwrites the first.
type TokenCache struct {
	store     interfaces.ITTLStore
	exchanger interfaces.ITokenExchanger
	ttl       time.Duration
}

var _ ITokenProvider = (*TokenCache)(nil)

func NewTokenCache(store interfaces.ITTLStore, exchanger interfaces.ITokenExchanger, ttl time.Duration) *TokenCache {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &TokenCache{store: store, exchanger: exchanger, ttl: ttl}
}

func (c *TokenCache) GetToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	if c.store != nil {
		token, found, err := c.store.Get(ctx, AccessTokenKey)
		switch {
		case err != nil:
			log.Warn("[token][cache] read failed, exchanging directly", zap.Error(err))
		case found && token != "":
			return token, nil
		}
	}

	token, err := c.exchanger.Exchange(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrAuthentication, emptyAccessTokenReason)
	}

	if c.store != nil {
		if err := c.store.Set(ctx, AccessTokenKey, token, c.ttl); err != nil {
			log.Warn("[token][cache] write failed", zap.Error(err))
		}
	}
	log.Debug("[token][cache] access token refreshed")
	return token, nil
}
