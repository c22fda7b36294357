package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/source"
	"github.com/vango-dev/htmf/pkg/node"
)

func treeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file.html|file.msgpack>",
		Short: "Print the node tree of a page or snapshot",
		Long: `Print the structure of a page or snapshot: one line per node with its
kind, name, and attributes.

Examples:
  htmf tree page.html
  htmf tree page.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			n, err := source.Parse(args[0], data)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), node.Dump(n))
			return nil
		},
	}

	return cmd
}
