package withings

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2"
)

const (
	accountURL = "https://account.withings.com"
	authURL    = accountURL + "/oauth2_user/authorize2"
	tokenURL   = accountURL + "/oauth2/token" //nolint:gosec // endpoint URL, not a credential
)

// AuthScope is an authorization scope requested during the code flow.
type AuthScope string

const (
	AuthScopeUserInfo        AuthScope = "user.info"
	AuthScopeUserMetrics     AuthScope = "user.metrics"
	AuthScopeUserActivity    AuthScope = "user.activity"
	AuthScopeUserSleepEvents AuthScope = "user.sleepevents"
)

// Auth runs the OAuth2 authorization-code exchange against the Withings
// account service.
type Auth struct {
	config         *oauth2.Config
	consumerSecret string
	mode           string
}

type AuthOption func(*Auth)

// WithDemoMode requests demo-account data instead of real user data.
func WithDemoMode() AuthOption {
	return func(a *Auth) { a.mode = "demo" }
}

func NewAuth(clientID, consumerSecret, redirectURL string, scopes []AuthScope, opts ...AuthOption) *Auth {
	scopeValues := make([]string, len(scopes))
	for i, scope := range scopes {
		scopeValues[i] = string(scope)
	}

	a := &Auth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: consumerSecret,
			RedirectURL:  redirectURL,
			// Withings wants a single comma-separated scope parameter.
			Scopes: []string{strings.Join(scopeValues, ",")},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		consumerSecret: consumerSecret,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AuthorizeURL is where the user grants access; the callback receives the
// code to pass to GetCredentials.
func (a *Auth) AuthorizeURL(state string) string {
	url := a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if a.mode != "" {
		url += "&mode=" + a.mode
	}
	return url
}

// GetCredentials exchanges an authorization code for a Credentials record.
func (a *Auth) GetCredentials(ctx context.Context, code string) (Credentials, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return Credentials{}, fmt.Errorf("exchanging code: %w", err)
	}

	userID, err := userIDValue(token.Extra("userid"))
	if err != nil {
		return Credentials{}, fmt.Errorf("reading userid from token response: %w", err)
	}

	creds := Credentials{
		ClientID:       a.config.ClientID,
		ConsumerSecret: a.consumerSecret,
		UserID:         userID,
	}
	return creds.WithToken(token), nil
}

// OAuth2Config exposes the underlying config for callers that drive the flow
// themselves (for example a CLI with a local callback server).
func (a *Auth) OAuth2Config() *oauth2.Config { return a.config }

// CredentialsSource is an oauth2.TokenSource backed by a Credentials record.
// When the access token lapses it refreshes against the token endpoint,
// replaces the held Credentials with a new record, and notifies the optional
// callback so the caller can persist the replacement.
type CredentialsSource struct {
	config    *oauth2.Config
	mu        sync.Mutex
	creds     Credentials
	onRefresh func(Credentials)
}

var _ oauth2.TokenSource = (*CredentialsSource)(nil)

func NewCredentialsSource(creds Credentials, onRefresh func(Credentials)) *CredentialsSource {
	return &CredentialsSource{
		config: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ConsumerSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		creds:     creds,
		onRefresh: onRefresh,
	}
}

func (s *CredentialsSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.creds.Expired() {
		return s.creds.Token(), nil
	}

	token, err := s.config.TokenSource(context.Background(), s.creds.Token()).Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing token: %w", err)
	}

	s.creds = s.creds.WithToken(token)
	if s.onRefresh != nil {
		s.onRefresh(s.creds)
	}
	return token, nil
}

// Credentials returns the currently held record.
func (s *CredentialsSource) Credentials() Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds
}
