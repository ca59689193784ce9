package withings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/go-withings/withings/internal/xhttp"
	"github.com/go-withings/withings/internal/xslog"
)

// Requester is the narrow transport capability the client depends on: submit
// a path and query parameters, get back the decoded JSON envelope. Any
// transport (or a test fake) can stand in.
type Requester interface {
	Request(ctx context.Context, path string, params url.Values) (any, error)
}

type Client struct {
	User    UserService
	Measure MeasureService
	Sleep   SleepService
	Heart   HeartService
	Notify  NotifyService

	requester Requester
	logger    *slog.Logger
}

func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	const baseURL = "https://wbsapi.withings.net"

	cfg := &clientConfig{
		baseURL:     baseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	requester := cfg.requester
	if requester == nil {
		transport := &withingsTransport{
			base:        xhttp.NewTransport(),
			tokenSource: cfg.tokenSource,
		}
		requester = &httpRequester{
			baseURL:    cfg.baseURL,
			httpClient: &http.Client{Transport: transport, Timeout: cfg.timeout},
		}
	}

	c := &Client{
		requester: requester,
		logger:    cfg.logger,
	}

	c.User = &userService{client: c}
	c.Measure = &measureService{client: c}
	c.Sleep = &sleepService{client: c}
	c.Heart = &heartService{client: c}
	c.Notify = &notifyService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	requester   Requester
	logger      *slog.Logger
	timeout     time.Duration
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithRequester substitutes the whole transport; the token source passed to
// New is ignored when this is set.
func WithRequester(requester Requester) Option {
	return func(cfg *clientConfig) { cfg.requester = requester }
}

// request performs one API call and unwraps the envelope: the Requester
// yields the decoded top-level JSON, ResponseBody classifies its status and
// extracts the body.
func (c *Client) request(ctx context.Context, path string, action string, params url.Values) (map[string]any, error) {
	if params == nil {
		params = make(url.Values)
	}
	params.Set("action", action)

	requestID := uuid.NewString()
	start := time.Now()
	c.logger.DebugContext(ctx, "withings api request",
		xslog.RequestID(requestID),
		slog.String("path", path),
		slog.String("action", action),
	)

	envelope, err := c.requester.Request(ctx, path, params)
	if err != nil {
		c.logger.DebugContext(ctx, "withings api request failed",
			xslog.RequestID(requestID), xslog.Error(err))
		return nil, err
	}

	body, err := ResponseBody(envelope)
	if err != nil {
		c.logger.DebugContext(ctx, "withings api status error",
			xslog.RequestID(requestID), xslog.Error(err))
		return nil, err
	}

	c.logger.DebugContext(ctx, "withings api response",
		xslog.RequestID(requestID), xslog.Duration(time.Since(start)))
	return body, nil
}

type httpRequester struct {
	baseURL    string
	httpClient *http.Client
}

var _ Requester = (*httpRequester)(nil)

func (r *httpRequester) Request(ctx context.Context, path string, params url.Values) (any, error) {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var decoded any
	if err := go_json.NewDecoder(bytes.NewReader(body)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding response: %w\nbody: %s", err, string(body))
	}
	return decoded, nil
}

type withingsTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*withingsTransport)(nil)

func (t *withingsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
