package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/go-withings/withings/internal/version"
)

func main() {
	_ = godotenv.Load()

	var debug bool

	rootCmd := &cobra.Command{
		Use:     "withings",
		Short:   "Withings health data in your terminal",
		Version: version.Get(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		loginCmd(),
		devicesCmd(),
		measCmd(),
		activityCmd(),
		sleepCmd(),
		sleepSummaryCmd(),
		heartCmd(),
		notifyCmd(),
		dumpCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
