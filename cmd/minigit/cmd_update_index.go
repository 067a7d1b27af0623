package main

import (
	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newUpdateIndexCmd() *cobra.Command {
	var add string

	cmd := &cobra.Command{
		Use:   "update-index --add <path>",
		Short: "Stage a file's current content into the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			_, err = r.Add(add)
			return err
		},
	}

	cmd.Flags().StringVar(&add, "add", "", "file to stage")
	cmd.MarkFlagRequired("add")
	return cmd
}
