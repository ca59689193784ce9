// Package credfile persists a credentials record as a JSON file under the
// user's config directory. Two historical layouts exist on disk: the current
// one stores (created, expires_in), the older one an absolute token_expiry.
// Both load; the older one is upgraded on the way in.
package credfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/go-withings/withings"
)

const (
	dotConfig = ".config"
	appName   = "withings"
	fileName  = "credentials.json"
)

var ErrNoCredentials = errors.New("no stored credentials - run login first")

type fileCredentials struct {
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
	TokenType      string `json:"token_type"`
	UserID         int    `json:"userid"`
	ClientID       string `json:"client_id"`
	ConsumerSecret string `json:"consumer_secret"`
	Created        int64  `json:"created,omitempty"`
	ExpiresIn      int64  `json:"expires_in,omitempty"`
	// TokenExpiry is the legacy absolute-expiry field.
	TokenExpiry int64 `json:"token_expiry,omitempty"`
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func Save(creds withings.Credentials) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", appName, err)
	}

	data, err := go_json.MarshalIndent(fileCredentials{
		AccessToken:    creds.AccessToken,
		RefreshToken:   creds.RefreshToken,
		TokenType:      creds.TokenType,
		UserID:         creds.UserID,
		ClientID:       creds.ClientID,
		ConsumerSecret: creds.ConsumerSecret,
		Created:        creds.Created.Unix(),
		ExpiresIn:      creds.ExpiresIn,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func Load() (withings.Credentials, error) {
	path, err := Path()
	if err != nil {
		return withings.Credentials{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return withings.Credentials{}, ErrNoCredentials
		}
		return withings.Credentials{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var stored fileCredentials
	if err := go_json.Unmarshal(data, &stored); err != nil {
		return withings.Credentials{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if stored.ExpiresIn == 0 && stored.TokenExpiry != 0 {
		return withings.NewCredentialsFromExpiry(
			stored.AccessToken,
			stored.RefreshToken,
			stored.TokenType,
			stored.UserID,
			stored.ClientID,
			stored.ConsumerSecret,
			time.Unix(stored.TokenExpiry, 0).UTC(),
		), nil
	}

	return withings.Credentials{
		AccessToken:    stored.AccessToken,
		RefreshToken:   stored.RefreshToken,
		TokenType:      stored.TokenType,
		UserID:         stored.UserID,
		ClientID:       stored.ClientID,
		ConsumerSecret: stored.ConsumerSecret,
		Created:        time.Unix(stored.Created, 0).UTC(),
		ExpiresIn:      stored.ExpiresIn,
	}, nil
}
