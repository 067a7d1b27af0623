package main

import (
	"fmt"

	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsFilesCmd() *cobra.Command {
	var stage bool

	cmd := &cobra.Command{
		Use:   "ls-files",
		Short: "List staged index entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			entries, err := r.ListIndex()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if stage {
					fmt.Fprintf(out, "%d %s %s\n", e.Mode, e.Hash, e.Path)
				} else {
					fmt.Fprintln(out, e.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stage, "stage", false, "show staged mode and address alongside each path")
	return cmd
}
