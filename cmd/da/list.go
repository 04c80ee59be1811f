package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conn-castle/deploy-agent/internal/config"
	"github.com/conn-castle/deploy-agent/internal/messages"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveDir(cmd)
			if err != nil {
				return err
			}

			store := config.NewStore(config.DefaultPaths(root).ConfigPath)
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			if len(cfg.Installers) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.ListEmpty)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, messages.ListHeader)
			for _, installer := range cfg.Installers {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s %s\n",
					installer.InstallerToken,
					installer.AppName,
					installer.AppVersion,
					installer.AppRunPort,
					installer.JDKName,
					installer.JDKVersion,
				)
			}
			return w.Flush()
		},
	}
}
