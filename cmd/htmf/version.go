package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version, commit, and build information for the htmf CLI.

Binaries built with "go install" report the module version and VCS
revision recorded by the Go toolchain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := currentBuild()
			w := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(w, v.version)
				return err
			}
			printBanner(w)
			return v.print(w)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}

type buildInfo struct {
	version string
	commit  string
	date    string
}

// currentBuild returns the linker-provided version information, filling
// gaps from the build info embedded by the Go toolchain.
func currentBuild() buildInfo {
	b := buildInfo{version: version, commit: commit, date: date}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.commit == "none" {
				b.commit = s.Value
			}
		case "vcs.time":
			if b.date == "unknown" {
				b.date = s.Value
			}
		}
	}
	return b
}

func (b buildInfo) print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n  Version:    %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n  OS/Arch:    %s/%s\n\n",
		b.version, b.commit, b.date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}
