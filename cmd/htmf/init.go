package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/config"
	"github.com/vango-dev/htmf/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write an htmf.yaml with the defaults",
		Long: `Write an htmf.yaml holding the default settings into dir (default: the
working directory). Existing files are left alone unless --force is given.

Examples:
  htmf init
  htmf init ./site --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			path := filepath.Join(dir, config.ConfigFileName)
			if config.Exists(dir) && !force {
				warn(cmd.ErrOrStderr(), "%s already exists", path)
				info(cmd.ErrOrStderr(), "Use --force to overwrite it")
				return nil
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.New("H081").Wrap(err)
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}

			success(cmd.ErrOrStderr(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing htmf.yaml")

	return cmd
}
