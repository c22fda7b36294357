package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/convert"
)

func convertCmd(load configLoader) *cobra.Command {
	var (
		output   string
		pkg      string
		funcName string
	)

	cmd := &cobra.Command{
		Use:   "convert <file.html>",
		Short: "Convert HTML to Go source",
		Long: `Convert an HTML page or fragment into a Go function that builds the
same tree with the node package.

Attributes with a typed constructor use it (class becomes h.Class); the
rest fall back to h.Attribute. Comments are kept as Go comments and
whitespace-only text is dropped. Use "-" to read standard input.

Examples:
  htmf convert login.html
  htmf convert login.html -o views/login.go --package views --func Login
  curl -s https://example.com | htmf convert -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if pkg == "" {
				pkg = cfg.Convert.Package
			}
			if funcName == "" {
				funcName = cfg.Convert.Func
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			src, err := convert.Convert(bytes.NewReader(data), convert.Options{Package: pkg, Func: funcName})
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, output, []byte(src)); err != nil {
				return err
			}
			if output != "" && output != "-" {
				success(cmd.ErrOrStderr(), "Wrote %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the Go source to this file instead of stdout")
	cmd.Flags().StringVar(&pkg, "package", "", "Package clause of the generated file (default from htmf.yaml, else \"views\")")
	cmd.Flags().StringVar(&funcName, "func", "", "Name of the generated function (default from htmf.yaml, else \"Page\")")

	return cmd
}
