package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fcasibu/minigit/pkg/object"
	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [file]",
		Short: "Compute a blob's address from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read %q: %w", args[0], err)
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				data = bytes.TrimRight(data, "\n")
			}

			var h object.Hash
			if write {
				r, err := repo.Open(".")
				if err != nil {
					return err
				}
				h, err = r.HashBlob(data, true)
				if err != nil {
					return err
				}
			} else {
				// Hashing without -w needs no repository at all.
				obj, err := object.EncodeBlob(data)
				if err != nil {
					return err
				}
				h = obj.Hash
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the blob into the object store")
	return cmd
}
