package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/source"
	"github.com/vango-dev/htmf/pkg/render"
)

func fmtCmd(load configLoader) *cobra.Command {
	var (
		pretty bool
		indent string
		output string
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Re-render HTML or a snapshot",
		Long: `Parse an HTML file (or decode a .msgpack snapshot) and render it again,
compact by default or indented with --pretty.

Whitespace-only text is dropped, other text is trimmed, and comments are
removed, so the output is the canonical form of the tree. Use "-" to read
HTML from standard input.

Examples:
  htmf fmt page.html
  htmf fmt page.html --pretty --indent "  "
  htmf fmt tree.msgpack -o page.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			rc := cfg.RendererConfig()
			if cmd.Flags().Changed("pretty") {
				rc.Pretty = pretty
			}
			if cmd.Flags().Changed("indent") {
				rc.Indent = indent
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			name := args[0]
			if name == "-" {
				name = "stdin.html"
			}
			n, err := source.Parse(name, data)
			if err != nil {
				return err
			}

			out, err := render.NewRenderer(rc).RenderToString(n)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, []byte(out+"\n"))
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent one child per line (default from htmf.yaml)")
	cmd.Flags().StringVar(&indent, "indent", "", "Indentation per level for --pretty (default four spaces)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
