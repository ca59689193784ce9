package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-withings/withings"
	"github.com/go-withings/withings/internal/config"
	"github.com/go-withings/withings/internal/credfile"
	"github.com/go-withings/withings/internal/oauth"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with Withings",
		Long:  "Opens a browser to authorize access and stores the credentials locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			scopes := []withings.AuthScope{
				withings.AuthScopeUserInfo,
				withings.AuthScopeUserMetrics,
				withings.AuthScopeUserActivity,
				withings.AuthScopeUserSleepEvents,
			}

			var opts []withings.AuthOption
			if cfg.DemoMode {
				opts = append(opts, withings.WithDemoMode())
			}

			auth := withings.NewAuth(cfg.ClientID, cfg.ConsumerSecret, cfg.RedirectURL, scopes, opts...)

			flow, err := oauth.NewFlow(auth, cfg.ListenAddr)
			if err != nil {
				return err
			}

			creds, err := flow.Run(ctx)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			if err := credfile.Save(creds); err != nil {
				return fmt.Errorf("failed to store credentials: %w", err)
			}

			fmt.Printf("Authentication successful!\n")
			fmt.Printf("Token expires: %s\n", creds.TokenExpiry().Format("2006-01-02 15:04:05"))

			return nil
		},
	}
}
