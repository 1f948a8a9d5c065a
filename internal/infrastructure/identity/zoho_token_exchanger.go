package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const tokenPath = "/oauth/v2/token"

var ErrIdentityNotConfigured = errors.New("identity provider credentials not configured")

// ZohoTokenExchanger performs the OAuth2 refresh-token grant against the
// accounts server. It holds no token state; caching is the caller's concern.
type ZohoTokenExchanger struct {
	oauth        *oauth2.Config
	refreshToken string
	httpClient   *http.Client
}

var _ interfaces.ITokenExchanger = (*ZohoTokenExchanger)(nil)

func NewZohoTokenExchanger(accountsURL, clientID, clientSecret, refreshToken string, timeout time.Duration) *ZohoTokenExchanger {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ZohoTokenExchanger{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  accountsURL + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refreshToken: refreshToken,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (e *ZohoTokenExchanger) Exchange(ctx context.Context) (string, error) {
	if e.oauth.ClientID == "" || e.oauth.ClientSecret == "" || e.refreshToken == "" {
		return "", ErrIdentityNotConfigured
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	tok, err := e.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: e.refreshToken}).Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			logger.FromContext(ctx).Error("[identity][exchanger] token refresh rejected",
				zap.Int("status", rerr.Response.StatusCode), zap.String("error_code", rerr.ErrorCode))
		}
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	if tok.AccessToken == "" {
		return "", errors.New("token refresh failed: no access_token in response")
	}

	logger.FromContext(ctx).Debug("[identity][exchanger] token refreshed", zap.Time("expiry", tok.Expiry))
	return tok.AccessToken, nil
}
