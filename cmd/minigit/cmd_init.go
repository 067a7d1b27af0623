package main

import (
	"fmt"
	"os"

	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Create an empty minigit repository or reinitialize an existing one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			if err := os.MkdirAll(path, 0o755); err != nil {
				return fmt.Errorf("create directory %q: %w", path, err)
			}

			r, reinitialized, err := repo.Init(path)
			if err != nil {
				return err
			}

			if reinitialized {
				fmt.Fprintf(cmd.OutOrStdout(), "Reinitialized existing minigit repository in %s\n", r.RepoDir)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty minigit repository in %s\n", r.RepoDir)
			}
			return nil
		},
	}
}
