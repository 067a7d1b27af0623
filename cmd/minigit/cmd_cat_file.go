package main

import (
	"errors"
	"fmt"

	"github.com/fcasibu/minigit/pkg/object"
	"github.com/fcasibu/minigit/pkg/repo"
	"github.com/spf13/cobra"
)

func newCatFileCmd() *cobra.Command {
	var showType bool
	var printContent bool

	cmd := &cobra.Command{
		Use:   "cat-file <address>",
		Short: "Show an object's type or decoded content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showType == printContent {
				return errors.New("specify exactly one of -t (type) or -p (print)")
			}

			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			objType, body, err := r.Store.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showType {
				fmt.Fprintln(out, objType)
				return nil
			}

			switch objType {
			case object.TypeBlob, object.TypeCommit:
				fmt.Fprintln(out, string(body))
			case object.TypeTree:
				entries, err := object.ParseTreeEntries(body)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%d %s %s\n", e.Mode, e.Hash, e.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showType, "type", "t", false, "show the object's type")
	cmd.Flags().BoolVarP(&printContent, "print", "p", false, "pretty-print the object's content")
	cmd.MarkFlagsMutuallyExclusive("type", "print")
	return cmd
}
