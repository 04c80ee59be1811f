package main

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/deploy-agent/internal/messages"
)

const flagDir = "dir"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String(flagDir, ".", messages.RootDirFlag)
	cmd.AddCommand(newRegisterCmd())
	cmd.AddCommand(newUnregisterCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}

// resolveDir returns the absolute agent working directory from --dir,
// expanding a leading ~.
func resolveDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString(flagDir)
	if err != nil {
		return "", err
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf(messages.DirResolveErrFmt, dir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.DirResolveErrFmt, dir, err)
	}
	return abs, nil
}
