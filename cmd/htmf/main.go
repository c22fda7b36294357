package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/config"
	"github.com/vango-dev/htmf/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌┬┐┌┬┐┌─┐
  ├─┤ │ │││├┤
  ┴ ┴ ┴ ┴ ┴└
`

// configLoader returns the configuration that supplies flag defaults.
type configLoader func() (*config.Config, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "htmf",
		Short: "Typed HTML trees for Go",
		Long: `htmf builds HTML from plain Go function calls.

This tool works with existing markup:

  • convert turns HTML into Go source that builds the same tree
  • fmt re-renders HTML in the compact or indented layout
  • snapshot and tree store and inspect finished trees
  • serve previews pages and snapshots in the browser

Flag defaults come from the nearest htmf.yaml, if any.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to htmf.yaml (default: nearest htmf.yaml above the working directory)")

	load := func() (*config.Config, error) {
		if configPath != "" {
			return config.LoadFile(configPath)
		}
		return config.LoadFromWorkingDir()
	}

	rootCmd.AddCommand(
		convertCmd(load),
		fmtCmd(load),
		snapshotCmd(),
		treeCmd(),
		serveCmd(load),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// readInput reads path, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.New("H080").WithDetail("Cannot read standard input.").Wrap(err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("H080").Wrap(err)
	}
	return data, nil
}

// writeOutput writes data to path, or to the command's output when path is
// empty or "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return errors.New("H081").Wrap(err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H081").Wrap(err)
	}
	return nil
}

// printBanner prints the htmf ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
