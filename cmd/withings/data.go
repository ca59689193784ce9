package main

import (
	"github.com/spf13/cobra"

	"github.com/go-withings/withings"
)

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List the user's devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.User.GetDevice(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
}

func measCmd() *cobra.Command {
	var days int
	var measType int

	cmd := &cobra.Command{
		Use:   "meas",
		Short: "List body measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			start, end := dateRange(days)
			params := &withings.MeasureGetMeasParams{
				StartDate: &start,
				EndDate:   &end,
			}
			if measType != 0 {
				t := withings.NewMeasureType(measType)
				params.MeasType = &t
			}

			resp, err := client.Measure.GetMeas(cmd.Context(), params)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "how many days back to fetch")
	cmd.Flags().IntVar(&measType, "type", 0, "restrict to one measure type code")
	return cmd
}

func activityCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "List daily activity statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			start, end := dateRange(days)
			resp, err := client.Measure.GetActivity(cmd.Context(), &withings.MeasureGetActivityParams{
				StartDateYMD: &start,
				EndDateYMD:   &end,
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "how many days back to fetch")
	return cmd
}

func sleepCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "List sleep-state intervals with dense series",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			start, end := dateRange(days)
			resp, err := client.Sleep.Get(cmd.Context(), &withings.SleepGetParams{
				StartDate: &start,
				EndDate:   &end,
				DataFields: []withings.GetSleepField{
					withings.GetSleepFieldHR,
					withings.GetSleepFieldRR,
					withings.GetSleepFieldSnoring,
				},
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().IntVar(&days, "days", 2, "how many days back to fetch")
	return cmd
}

func sleepSummaryCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sleep-summary",
		Short: "List per-night sleep summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			start, end := dateRange(days)
			resp, err := client.Sleep.GetSummary(cmd.Context(), &withings.SleepGetSummaryParams{
				StartDateYMD: &start,
				EndDateYMD:   &end,
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "how many days back to fetch")
	return cmd
}

func heartCmd() *cobra.Command {
	var days int
	var signalID int

	cmd := &cobra.Command{
		Use:   "heart",
		Short: "List heart readings, or fetch one ECG waveform",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if signalID != 0 {
				resp, err := client.Heart.Get(cmd.Context(), signalID)
				if err != nil {
					return err
				}
				return printJSON(resp)
			}

			start, end := dateRange(days)
			resp, err := client.Heart.List(cmd.Context(), &withings.HeartListParams{
				StartDate: &start,
				EndDate:   &end,
			})
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "how many days back to fetch")
	cmd.Flags().IntVar(&signalID, "signal", 0, "fetch the ECG waveform for this signal id")
	return cmd
}
