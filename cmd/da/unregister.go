package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/deploy-agent/internal/config"
	"github.com/conn-castle/deploy-agent/internal/controlplane"
	"github.com/conn-castle/deploy-agent/internal/messages"
)

// unregisterClient notifies the control plane that an installer is gone.
type unregisterClient interface {
	Unregister(ctx context.Context, baseURL, installerToken string) error
}

// newUnregisterClient is a seam for tests.
var newUnregisterClient = func() unregisterClient { return controlplane.NewClient() }

func newUnregisterCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   messages.UnregisterUse,
		Short: messages.UnregisterShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New(messages.UnregisterTokenRequired)
			}
			root, err := resolveDir(cmd)
			if err != nil {
				return err
			}

			store := config.NewStore(config.DefaultPaths(root).ConfigPath)
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			installer := cfg.FindByToken(token)
			if installer == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.UnregisterUnknownTokenFmt, token)
				return nil
			}

			// Removal from the local store proceeds even when the control
			// plane cannot be reached; the warning keeps the operator informed.
			if err := newUnregisterClient().Unregister(cmd.Context(), installer.URL, token); err != nil {
				warnColor := color.New(color.FgYellow)
				_, _ = warnColor.Fprintf(cmd.ErrOrStderr(), messages.UnregisterNotifyFailedFmt, token, err)
			}

			cfg.Remove(token)
			if err := store.Save(cfg); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.UnregisterDoneFmt, token)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", messages.UnregisterFlagToken)
	return cmd
}
