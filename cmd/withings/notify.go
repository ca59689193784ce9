package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-withings/withings"
)

func notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage webhook notification subscriptions",
	}
	cmd.AddCommand(notifyListCmd(), notifySubscribeCmd(), notifyRevokeCmd())
	return cmd
}

func notifyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notification subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.Notify.List(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
}

func notifySubscribeCmd() *cobra.Command {
	var callbackURL string
	var appli int
	var comment string

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe a callback URL to a data category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if callbackURL == "" {
				return errors.New("--callback is required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			return client.Notify.Subscribe(cmd.Context(), callbackURL, withings.NewNotifyAppli(appli), comment)
		},
	}
	cmd.Flags().StringVar(&callbackURL, "callback", "", "webhook callback URL")
	cmd.Flags().IntVar(&appli, "appli", int(withings.NotifyAppliWeight), "data category code")
	cmd.Flags().StringVar(&comment, "comment", "", "free-form subscription comment")
	return cmd
}

func notifyRevokeCmd() *cobra.Command {
	var callbackURL string
	var appli int

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if callbackURL == "" {
				return errors.New("--callback is required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			var appliFilter *withings.NotifyAppli
			if appli != 0 {
				a := withings.NewNotifyAppli(appli)
				appliFilter = &a
			}
			return client.Notify.Revoke(cmd.Context(), callbackURL, appliFilter)
		},
	}
	cmd.Flags().StringVar(&callbackURL, "callback", "", "webhook callback URL")
	cmd.Flags().IntVar(&appli, "appli", 0, "data category code (all when omitted)")
	return cmd
}
