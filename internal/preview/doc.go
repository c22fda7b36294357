// Package preview serves rendered node trees over HTTP for quick visual
// checks while porting pages.
//
// Routes:
//
//	GET /            index of .html, .htm and .msgpack files under the root
//	GET /render/*    the named file, rendered (?pretty=1 for the indented layout)
//	GET /healthz     liveness
//	GET /metrics     Prometheus metrics, when enabled
//
// Each render runs inside an OpenTelemetry span named "htmf.render" that
// carries the file path and node count. Spans go to the global tracer
// provider, so they are dropped unless the program installs one.
//
// Example:
//
//	srv := preview.New(preview.Config{Dir: "./site", Metrics: true})
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package preview
