package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmf/internal/config"
	"github.com/vango-dev/htmf/internal/errors"
	"github.com/vango-dev/htmf/internal/preview"
)

func serveCmd(load configLoader) *cobra.Command {
	var (
		dir     string
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview pages and snapshots in the browser",
		Long: `Serve every .html and .msgpack file under a directory.

Each request parses the file again, so edits show up on reload.

Routes:
  • /                 index of renderable files
  • /render/<path>    the rendered page (add ?pretty=1 for indented output)
  • /healthz          liveness probe
  • /metrics          Prometheus metrics (unless disabled in htmf.yaml)

Examples:
  htmf serve
  htmf serve --dir ./pages --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Preview.Addr = addr
			}
			pagesDir := cfg.PreviewDirPath()
			if dir != "" {
				pagesDir = dir
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd, cfg, pagesDir, verbose)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of pages to serve (default from htmf.yaml, else \".\")")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from htmf.yaml, else \"localhost:7070\")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config, dir string, verbose bool) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		e := errors.New("H061").WithDetail("No directory at " + dir + ".")
		if err != nil {
			e = e.Wrap(err)
		}
		return e
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	out := cmd.OutOrStdout()
	printBanner(out)
	info(out, "Serving %s", dir)
	info(out, "Open http://%s/", cfg.Preview.Addr)
	if cfg.Preview.Metrics {
		info(out, "Metrics at http://%s/metrics", cfg.Preview.Addr)
	}

	srv := preview.New(preview.Config{
		Addr:            cfg.Preview.Addr,
		Dir:             dir,
		Renderer:        cfg.RendererConfig(),
		RateLimit:       cfg.Preview.RateLimit,
		Burst:           cfg.Preview.Burst,
		Metrics:         cfg.Preview.Metrics,
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Logger:          logger,
	})
	return srv.ListenAndServe(ctx)
}
