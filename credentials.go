package withings

import (
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Credentials is the OAuth2 state for one user, plus the client identity the
// tokens were issued to. It is a value: a refresh produces a new Credentials
// rather than mutating the old one.
//
// Expiry is stored as (Created, ExpiresIn); the older persisted shape with an
// absolute expiry instant is upgraded via NewCredentialsFromExpiry at load.
type Credentials struct {
	AccessToken    string
	RefreshToken   string
	TokenType      string
	UserID         int
	ClientID       string
	ConsumerSecret string
	Created        time.Time
	ExpiresIn      int64
}

// NewCredentials builds a Credentials from a token endpoint response body
// (access_token, refresh_token, token_type, expires_in, userid).
func NewCredentials(clientID, consumerSecret string, data map[string]any) (Credentials, error) {
	accessToken, err := asString(data["access_token"])
	if err != nil {
		return Credentials{}, err
	}
	refreshToken, err := asString(data["refresh_token"])
	if err != nil {
		return Credentials{}, err
	}
	tokenType, err := asString(data["token_type"])
	if err != nil {
		return Credentials{}, err
	}
	expiresIn, err := asInt(data["expires_in"])
	if err != nil {
		return Credentials{}, err
	}
	userID, err := userIDValue(data["userid"])
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		TokenType:      tokenType,
		UserID:         userID,
		ClientID:       clientID,
		ConsumerSecret: consumerSecret,
		Created:        time.Now().UTC(),
		ExpiresIn:      int64(expiresIn),
	}, nil
}

// NewCredentialsFromExpiry upgrades the legacy shape, which stored an
// absolute expiry instant instead of (Created, ExpiresIn).
func NewCredentialsFromExpiry(accessToken, refreshToken, tokenType string, userID int, clientID, consumerSecret string, tokenExpiry time.Time) Credentials {
	now := time.Now().UTC()
	return Credentials{
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		TokenType:      tokenType,
		UserID:         userID,
		ClientID:       clientID,
		ConsumerSecret: consumerSecret,
		Created:        now,
		ExpiresIn:      int64(tokenExpiry.Sub(now) / time.Second),
	}
}

// WithToken returns a new Credentials carrying the refreshed token. Fields
// the token endpoint does not resend (user id, client identity) carry over.
func (c Credentials) WithToken(token *oauth2.Token) Credentials {
	next := c
	next.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		next.RefreshToken = token.RefreshToken
	}
	if token.TokenType != "" {
		next.TokenType = token.TokenType
	}
	next.Created = time.Now().UTC()
	next.ExpiresIn = int64(time.Until(token.Expiry) / time.Second)
	return next
}

func (c Credentials) TokenExpiry() time.Time {
	return c.Created.Add(time.Duration(c.ExpiresIn) * time.Second)
}

func (c Credentials) Expired() bool {
	return !time.Now().Before(c.TokenExpiry())
}

// Token bridges to the oauth2 package.
func (c Credentials) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.TokenExpiry(),
	}
}

// The token endpoint has sent userid as both a number and a numeric string.
func userIDValue(v any) (int, error) {
	if s, ok := v.(string); ok {
		id, err := strconv.Atoi(s)
		if err != nil {
			return 0, unexpectedType(v, "user id")
		}
		return id, nil
	}
	return asInt(v)
}
