package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "show changes between the working tree and the index, or the index and HEAD with --cached",
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "diff the index against HEAD instead of the working tree against the index")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepository()
		if err != nil {
			return err
		}
		diffs, err := r.Diff(cached)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, d := range diffs {
			if d.Binary {
				fmt.Fprintf(out, "Binary files a/%s and b/%s differ\n", d.Path, d.Path)
				continue
			}
			fmt.Fprintf(out, "--- a/%s\n+++ b/%s\n", d.Path, d.Path)
			for _, h := range d.Hunks {
				fmt.Fprint(out, h.Render())
			}
		}
		return nil
	}

	return cmd
}
