package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/go-withings/withings"
	"github.com/go-withings/withings/internal/credfile"
)

// newClient builds an API client from the stored credentials. Refreshed
// credentials are written back so the next invocation starts with them.
func newClient() (*withings.Client, error) {
	creds, err := credfile.Load()
	if err != nil {
		return nil, err
	}

	source := withings.NewCredentialsSource(creds, func(refreshed withings.Credentials) {
		if err := credfile.Save(refreshed); err != nil {
			slog.Warn("failed to persist refreshed credentials", slog.Any("error", err))
		}
	})

	return withings.New(source, withings.WithTimeout(30*time.Second)), nil
}

func printJSON(v any) error {
	data, err := go_json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

func dateRange(days int) (start, end time.Time) {
	end = time.Now()
	start = end.AddDate(0, 0, -days)
	return start, end
}
