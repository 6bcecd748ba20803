package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchCmd() *cobra.Command {
	var del string
	var list bool

	cmd := &cobra.Command{
		Use:   "branch [name] [start-revision]",
		Short: "list, create or delete local branches",
		Args:  cobra.MaximumNArgs(2),
	}
	cmd.Flags().StringVarP(&del, "delete", "d", "", "delete the named branch")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list local branches")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepository()
		if err != nil {
			return err
		}

		if del != "" {
			return r.DeleteBranch(del)
		}

		if list || len(args) == 0 {
			branches, err := r.ListBranches()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range branches {
				marker := "  "
				if b.Current {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%s\n", marker, b.Name)
			}
			return nil
		}

		startRev := ""
		if len(args) > 1 {
			startRev = args[1]
		}
		return r.Branch(args[0], startRev)
	}

	return cmd
}
