package main

import (
	"fmt"

	"github.com/go-rgit/rgit"
	"github.com/go-rgit/rgit/ginternals"
	"github.com/go-rgit/rgit/ginternals/object"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "walk the parent chain from HEAD, printing OID, author and message",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		r, err := openRepository()
		if err != nil {
			return err
		}
		return printLog(cmd, r)
	}

	return cmd
}

func printLog(cmd *cobra.Command, r *rgit.Repository) error {
	oid, err := r.Resolve("@")
	if err != nil {
		if errors.Is(err, ginternals.ErrUnknownRevision) {
			return nil // no commits yet
		}
		return err
	}

	out := cmd.OutOrStdout()
	for {
		o, err := r.Backend().Object(oid)
		if err != nil {
			return err
		}
		commit, err := object.NewCommitFromObject(o)
		if err != nil {
			return err
		}

		author := commit.Author()
		fmt.Fprintf(out, "%s\nAuthor: %s <%s>\n\n    %s\n\n", oid.String(), author.Name, author.Email, commit.Message())

		parents := commit.ParentIDs()
		if len(parents) == 0 {
			return nil
		}
		oid = parents[0]
	}
}
