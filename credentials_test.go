package withings

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestNewCredentials(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"access_token":  "my_access_token",
		"refresh_token": "my_refresh_token",
		"token_type":    "Bearer",
		"expires_in":    float64(10800),
		"userid":        "12345",
	}

	creds, err := NewCredentials("my_client_id", "my_secret", data)
	if err != nil {
		t.Fatalf("NewCredentials() error = %v", err)
	}
	if creds.AccessToken != "my_access_token" || creds.RefreshToken != "my_refresh_token" {
		t.Errorf("tokens = %q/%q", creds.AccessToken, creds.RefreshToken)
	}
	if creds.TokenType != "Bearer" {
		t.Errorf("TokenType = %q, want Bearer", creds.TokenType)
	}
	if creds.UserID != 12345 {
		t.Errorf("UserID = %d, want 12345", creds.UserID)
	}
	if creds.ClientID != "my_client_id" || creds.ConsumerSecret != "my_secret" {
		t.Errorf("client identity = %q/%q", creds.ClientID, creds.ConsumerSecret)
	}
	if got := creds.TokenExpiry().Sub(creds.Created); got != 10800*time.Second {
		t.Errorf("expiry window = %v, want 3h", got)
	}
	if creds.Expired() {
		t.Error("fresh credentials report expired")
	}
}

func TestNewCredentialsNumericUserID(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"access_token":  "a",
		"refresh_token": "r",
		"token_type":    "Bearer",
		"expires_in":    float64(3600),
		"userid":        float64(67890),
	}
	creds, err := NewCredentials("id", "secret", data)
	if err != nil {
		t.Fatalf("NewCredentials() error = %v", err)
	}
	if creds.UserID != 67890 {
		t.Errorf("UserID = %d, want 67890", creds.UserID)
	}
}

func TestNewCredentialsMissingField(t *testing.T) {
	t.Parallel()

	data := map[string]any{
		"access_token": "a",
		"token_type":   "Bearer",
		"expires_in":   float64(3600),
		"userid":       float64(1),
	}
	if _, err := NewCredentials("id", "secret", data); err == nil {
		t.Error("expected error for missing refresh_token")
	}
}

func TestNewCredentialsFromExpiry(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour)
	creds := NewCredentialsFromExpiry("a", "r", "Bearer", 99, "id", "secret", expiry)

	if creds.Expired() {
		t.Error("credentials expiring in an hour report expired")
	}
	if drift := creds.TokenExpiry().Sub(expiry); drift < -2*time.Second || drift > 2*time.Second {
		t.Errorf("TokenExpiry drifted %v from the legacy instant", drift)
	}

	past := NewCredentialsFromExpiry("a", "r", "Bearer", 99, "id", "secret", time.Now().Add(-time.Minute))
	if !past.Expired() {
		t.Error("credentials with a past expiry report valid")
	}
}

func TestCredentialsWithToken(t *testing.T) {
	t.Parallel()

	original := Credentials{
		AccessToken:    "old_access",
		RefreshToken:   "old_refresh",
		TokenType:      "Bearer",
		UserID:         7,
		ClientID:       "id",
		ConsumerSecret: "secret",
		Created:        time.Now().Add(-4 * time.Hour),
		ExpiresIn:      10800,
	}
	if !original.Expired() {
		t.Fatal("setup: original should be expired")
	}

	next := original.WithToken(&oauth2.Token{
		AccessToken:  "new_access",
		RefreshToken: "new_refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(3 * time.Hour),
	})

	if next.AccessToken != "new_access" || next.RefreshToken != "new_refresh" {
		t.Errorf("refreshed tokens = %q/%q", next.AccessToken, next.RefreshToken)
	}
	if next.UserID != 7 || next.ClientID != "id" || next.ConsumerSecret != "secret" {
		t.Errorf("identity not carried over: %+v", next)
	}
	if next.Expired() {
		t.Error("refreshed credentials report expired")
	}
	// refresh returns a new value; the old record is untouched
	if original.AccessToken != "old_access" {
		t.Errorf("original mutated: %+v", original)
	}

	// the token endpoint may omit the refresh token on rotation
	keep := next.WithToken(&oauth2.Token{AccessToken: "newer", Expiry: time.Now().Add(time.Hour)})
	if keep.RefreshToken != "new_refresh" {
		t.Errorf("RefreshToken = %q, want carried over", keep.RefreshToken)
	}
	if keep.TokenType != "Bearer" {
		t.Errorf("TokenType = %q, want carried over", keep.TokenType)
	}
}

func TestCredentialsToken(t *testing.T) {
	t.Parallel()

	creds := Credentials{
		AccessToken:  "a",
		RefreshToken: "r",
		TokenType:    "Bearer",
		Created:      time.Now(),
		ExpiresIn:    3600,
	}
	token := creds.Token()
	if token.AccessToken != "a" || token.RefreshToken != "r" || token.TokenType != "Bearer" {
		t.Errorf("Token() = %+v", token)
	}
	if !token.Expiry.Equal(creds.TokenExpiry()) {
		t.Errorf("Token().Expiry = %v, want %v", token.Expiry, creds.TokenExpiry())
	}
	if !token.Valid() {
		t.Error("bridged token should be valid")
	}
}

func TestCredentialsSourceServesUnexpiredToken(t *testing.T) {
	t.Parallel()

	creds := Credentials{
		AccessToken:  "live",
		RefreshToken: "r",
		TokenType:    "Bearer",
		ClientID:     "id",
		Created:      time.Now(),
		ExpiresIn:    3600,
	}

	refreshed := false
	source := NewCredentialsSource(creds, func(Credentials) { refreshed = true })

	token, err := source.Token()
	if err != nil {
		t.Fatalf("Token() error = %v", err)
	}
	if token.AccessToken != "live" {
		t.Errorf("AccessToken = %q, want live", token.AccessToken)
	}
	// no endpoint call happens while the held token is still valid
	if refreshed {
		t.Error("refresh callback fired for an unexpired token")
	}
	if got := source.Credentials(); got.AccessToken != "live" {
		t.Errorf("Credentials() = %+v", got)
	}
}

func TestAuthAuthorizeURL(t *testing.T) {
	t.Parallel()

	scopes := []AuthScope{AuthScopeUserInfo, AuthScopeUserMetrics}
	auth := NewAuth("my_client_id", "secret", "http://127.0.0.1:8472/callback", scopes)

	url := auth.AuthorizeURL("state123")
	for _, want := range []string{
		"https://account.withings.com/oauth2_user/authorize2",
		"client_id=my_client_id",
		"state=state123",
		"scope=user.info%2Cuser.metrics",
		"response_type=code",
	} {
		if !strings.Contains(url, want) {
			t.Errorf("AuthorizeURL() = %q, missing %q", url, want)
		}
	}
	if strings.Contains(url, "mode=") {
		t.Errorf("AuthorizeURL() = %q, unexpected mode", url)
	}

	demo := NewAuth("my_client_id", "secret", "http://127.0.0.1:8472/callback", scopes, WithDemoMode())
	if got := demo.AuthorizeURL("s"); !strings.Contains(got, "&mode=demo") {
		t.Errorf("AuthorizeURL() = %q, missing demo mode", got)
	}
}
