package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newCommitTreeCmd() *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "commit-tree <tree-address>",
		Short: "Create a commit object for a tree, reading the message from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read commit message from stdin: %w", err)
			}
			message = bytes.TrimRight(message, "\n")

			r, err := repo.Open(".")
			if err != nil {
				return err
			}
			h, err := r.CommitTree(string(message), args[0], parent)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().StringVarP(&parent, "parent", "p", "", "parent commit address")
	return cmd
}
