// Package oauth runs the browser-based authorization flow for the CLI: it
// serves the registered callback on a local address, sends the user to the
// Withings consent page, and exchanges the returned code for credentials.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-withings/withings"
)

const (
	callbackPath = "/callback"
	shutdownTime = 5 * time.Second
)

type credentialsResult struct {
	creds withings.Credentials
	err   error
}

type Flow struct {
	auth       *withings.Auth
	listenAddr string
	state      string
}

func NewFlow(auth *withings.Auth, listenAddr string) (*Flow, error) {
	state, err := GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}
	return &Flow{
		auth:       auth,
		listenAddr: listenAddr,
		state:      state,
	}, nil
}

func (f *Flow) Run(ctx context.Context) (withings.Credentials, error) {
	resultCh := make(chan credentialsResult, 1)

	server, err := f.startCallbackServer(resultCh)
	if err != nil {
		return withings.Credentials{}, fmt.Errorf("failed to start callback server: %w", err)
	}

	url := f.auth.AuthorizeURL(f.state)

	fmt.Printf("Opening browser for authorization...\n")
	fmt.Printf("If the browser doesn't open, visit:\n%s\n\n", url)

	if err := openBrowser(url); err != nil {
		fmt.Printf("Failed to open browser: %v\n", err)
	}

	select {
	case result := <-resultCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTime)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Warning: failed to shutdown server: %v\n", err)
		}

		return result.creds, result.err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTime)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)

		return withings.Credentials{}, ctx.Err()
	}
}

func (f *Flow) startCallbackServer(resultCh chan<- credentialsResult) (*http.Server, error) {
	mux := http.NewServeMux()

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		creds, err := f.handleCallback(w, r)
		if err != nil {
			resultCh <- credentialsResult{err: err}
			return
		}
		writeSuccessHTML(w)
		resultCh <- credentialsResult{creds: creds}
	})

	listener, err := net.Listen("tcp", f.listenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to start listener: %w", err)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			resultCh <- credentialsResult{err: fmt.Errorf("server error: %w", err)}
		}
	}()

	return server, nil
}

func (f *Flow) handleCallback(w http.ResponseWriter, r *http.Request) (withings.Credentials, error) {
	if !ValidateState(f.state, r.URL.Query().Get("state")) {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return withings.Credentials{}, errors.New("invalid state parameter")
	}

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		errDesc := r.URL.Query().Get("error_description")
		http.Error(w, fmt.Sprintf("OAuth error: %s", errDesc), http.StatusBadRequest)
		return withings.Credentials{}, fmt.Errorf("oauth error: %s - %s", errParam, errDesc)
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return withings.Credentials{}, errors.New("missing authorization code")
	}

	creds, err := f.auth.GetCredentials(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange authorization code", http.StatusInternalServerError)
		return withings.Credentials{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	return creds, nil
}

func writeSuccessHTML(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head><title>Authorization Successful</title></head>
<body>
<h1>Authorization Successful</h1>
<p>You can close this window and return to the terminal.</p>
</body>
</html>`)
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
