package xhttp

import (
	"fmt"
	"net/http"

	"github.com/go-withings/withings/internal/version"
)

type withingsTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*withingsTransport)(nil)

func (t *withingsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "go-withings/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with the standard client headers.
func NewTransport() http.RoundTripper {
	return &withingsTransport{base: http.DefaultTransport}
}
