package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deploy-agent/internal/config"
	"github.com/conn-castle/deploy-agent/internal/controlplane"
	"github.com/conn-castle/deploy-agent/internal/fetch"
	"github.com/conn-castle/deploy-agent/internal/messages"
	"github.com/conn-castle/deploy-agent/internal/registrar"
)

// registerClient obtains an installer registration from the control plane.
type registerClient interface {
	Register(ctx context.Context, baseURL, registrationToken, serverIdentity string, port uint32) (*controlplane.InstallerInfo, error)
}

// newRegisterClient is a seam for tests.
var newRegisterClient = func() registerClient { return controlplane.NewClient() }

func newRegisterCmd() *cobra.Command {
	var url string
	var token string
	var port uint32

	cmd := &cobra.Command{
		Use:   messages.RegisterUse,
		Short: messages.RegisterShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return errors.New(messages.RegisterURLRequired)
			}
			if token == "" {
				return errors.New(messages.RegisterTokenRequired)
			}
			root, err := resolveDir(cmd)
			if err != nil {
				return err
			}

			paths := config.DefaultPaths(root)
			store := config.NewStore(paths.ConfigPath)
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			info, err := newRegisterClient().Register(cmd.Context(), url, token, cfg.ServerIdentity, port)
			if err != nil {
				return err
			}

			fetcher := fetch.NewClient(url, paths.SoftwaresDir)
			reg := registrar.New(paths, store, fetcher)
			if err := reg.Install(cmd.Context(), cfg, *info); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.RegisterDoneFmt,
				info.InstallerToken, info.AppName, info.AppVersion, info.AppRunPort)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", messages.RegisterFlagURL)
	cmd.Flags().StringVar(&token, "token", "", messages.RegisterFlagToken)
	cmd.Flags().Uint32Var(&port, "port", 0, messages.RegisterFlagPort)
	return cmd
}
