package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/effective-security/xlog"
	"yfmcp/internal/app"
	"yfmcp/internal/config"
	"yfmcp/internal/logging"
	"yfmcp/internal/tools"
)

var logger = xlog.NewPackageLogger("yfmcp", "fetch")

// dispatcher is the part of the router the CLI drives.
type dispatcher interface {
	Definitions() []tools.Definition
	Dispatch(ctx context.Context, req tools.Request) tools.Result
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, func(cfg config.Config) (dispatcher, error) {
		return app.NewRouter(cfg)
	}))
}

// run executes one operation and returns the exit code: 0 on success, 1 on
// an error result, 2 on bad usage or setup failure.
func run(argv []string, stdout, stderr io.Writer, newRouter func(config.Config) (dispatcher, error)) int {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		tool       = fs.String("tool", "", "operation to run, e.g. get_top")
		argsJSON   = fs.String("args", "{}", "operation arguments as a JSON object")
		list       = fs.Bool("list", false, "print the operation catalogue and exit")
		timeout    = fs.Int("timeout", 0, "request timeout seconds (default from config)")
		configPath = fs.String("config", os.Getenv("CONFIG_FILE"), "path to config.json or config.yaml (optional)")
		logLevel   = fs.String("log-level", "", "log level (default from config)")
	)
	if err := fs.Parse(argv); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if *timeout > 0 {
		cfg.Server.RequestTimeoutSec = *timeout
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 2
	}
	if err := logging.Setup(stderr, cfg.Log.Level); err != nil {
		fmt.Fprintf(stderr, "logging: %v\n", err)
		return 2
	}

	router, err := newRouter(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "setup: %v\n", err)
		return 2
	}

	if *list {
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(router.Definitions()); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 2
		}
		return 0
	}

	if *tool == "" {
		fmt.Fprintln(stderr, "missing -tool (use -list to see the operations)")
		return 2
	}
	var args tools.Args
	if err := json.Unmarshal([]byte(*argsJSON), &args); err != nil {
		fmt.Fprintf(stderr, "invalid -args: %v\n", err)
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.RequestTimeoutSec)*time.Second)
	defer cancel()

	start := time.Now()
	res := router.Dispatch(ctx, tools.Request{Name: *tool, Args: args})
	logger.KV(xlog.DEBUG, "tool", *tool, "kind", res.Kind, "duration", time.Since(start))

	if res.IsError() {
		fmt.Fprintf(stderr, "%s: %s\n", res.Kind, res.Text)
		return 1
	}
	fmt.Fprintln(stdout, res.Text)
	return 0
}
