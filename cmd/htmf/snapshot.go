package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/internal/source"
	"github.com/vango-dev/htmf/pkg/codec"
	"github.com/vango-dev/htmf/pkg/node"
)

func snapshotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot <file.html>",
		Short: "Store a page as a msgpack snapshot",
		Long: `Parse an HTML file and store the resulting tree as a msgpack snapshot.
Snapshots load without re-parsing and can be served by "htmf serve" or
inspected with "htmf tree".

Examples:
  htmf snapshot page.html                 # writes page.msgpack
  htmf snapshot page.html -o cache/page.msgpack`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			if output == "" {
				output = strings.TrimSuffix(input, filepath.Ext(input)) + ".msgpack"
			}
			if output == input {
				return errors.New("H081").
					WithDetail("Refusing to overwrite the input " + input + ".").
					WithSuggestion("Pass a different path with -o")
			}

			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}
			n, err := source.Parse(input, data)
			if err != nil {
				return err
			}

			snap, err := codec.Encode(n)
			if err != nil {
				return errors.New("H022").Wrap(err)
			}
			if err := writeOutput(cmd, output, snap); err != nil {
				return err
			}

			success(cmd.ErrOrStderr(), "Wrote %s", output)
			info(cmd.ErrOrStderr(), "%d nodes, %d bytes", node.Count(n), len(snap))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Snapshot path (default: input with a .msgpack extension)")

	return cmd
}
