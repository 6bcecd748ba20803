package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-rgit/rgit"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "create or refresh the repository layout in the current (or given) directory",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		r, err := rgit.InitRepository(abs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized repository in %s\n", r.Root())
		return nil
	}

	return cmd
}
