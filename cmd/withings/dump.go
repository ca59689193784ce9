package main

import (
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-withings/withings"
)

// dumpCmd fetches every read endpoint concurrently and prints one combined
// document. Endpoints that fail with an API status error are reported under
// an errors key instead of aborting the whole dump.
func dumpCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Fetch all data and print one combined JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			start, end := dateRange(days)

			var mu sync.Mutex
			out := make(map[string]any)
			errs := make(map[string]string)

			record := func(key string, v any, err error) {
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs[key] = err.Error()
					return
				}
				out[key] = v
			}

			g, ctx := errgroup.WithContext(cmd.Context())

			g.Go(func() error {
				resp, err := client.User.GetDevice(ctx)
				record("devices", resp, err)
				return nil
			})
			g.Go(func() error {
				resp, err := client.Measure.GetMeas(ctx, &withings.MeasureGetMeasParams{StartDate: &start, EndDate: &end})
				record("measures", resp, err)
				return nil
			})
			g.Go(func() error {
				resp, err := client.Measure.GetActivity(ctx, &withings.MeasureGetActivityParams{StartDateYMD: &start, EndDateYMD: &end})
				record("activity", resp, err)
				return nil
			})
			g.Go(func() error {
				resp, err := client.Sleep.GetSummary(ctx, &withings.SleepGetSummaryParams{StartDateYMD: &start, EndDateYMD: &end})
				record("sleep_summary", resp, err)
				return nil
			})
			g.Go(func() error {
				resp, err := client.Heart.List(ctx, &withings.HeartListParams{StartDate: &start, EndDate: &end})
				record("heart", resp, err)
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}

			if len(errs) > 0 {
				out["errors"] = errs
			}
			return printJSON(out)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "how many days back to fetch")
	return cmd
}
