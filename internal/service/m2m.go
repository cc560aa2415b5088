package service

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"leave-tracker-backend/internal/config"
	apperrors "leave-tracker-backend/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// M2MService issues machine-to-machine bearer tokens for calls to the
// identity API and the event bus. Tokens are cached until they expire.
type M2MService struct {
	cfg        *config.Config
	httpClient *http.Client

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewM2MService creates a new M2M token service
func NewM2MService(cfg *config.Config) *M2MService {
	return &M2MService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Token returns a valid access token, fetching a new one when needed
func (s *M2MService) Token(ctx context.Context) (string, error) {
	if !s.cfg.M2MConfigured() {
		return "", apperrors.ErrM2MNotConfigured
	}

	s.mu.Lock()
	if s.source == nil {
		// the token source outlives ctx, so it gets its own base context
		base := context.WithValue(context.Background(), oauth2.HTTPClient, s.httpClient)
		s.source = s.credentials().TokenSource(base)
	}
	source := s.source
	s.mu.Unlock()

	token, err := source.Token()
	if err != nil {
		return "", apperrors.NewUpstreamError("m2m auth", err)
	}
	return token.AccessToken, nil
}

func (s *M2MService) credentials() *clientcredentials.Config {
	params := url.Values{}
	if s.cfg.M2MAuthAudience != "" {
		params.Set("audience", s.cfg.M2MAuthAudience)
	}
	return &clientcredentials.Config{
		ClientID:       s.cfg.M2MAuthClientID,
		ClientSecret:   s.cfg.M2MAuthClientSecret,
		TokenURL:       s.cfg.M2MAuthURL,
		EndpointParams: params,
		AuthStyle:      oauth2.AuthStyleInParams,
	}
}
