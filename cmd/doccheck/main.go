// doccheck executes the Go snippets in the documentation and verifies the
// output each document claims.
// Usage: go run ./cmd/doccheck --config configs/quantcheck.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/quantcheck/quantcheck/internal/config"
	"github.com/quantcheck/quantcheck/internal/doccheck"
	"github.com/quantcheck/quantcheck/internal/report"
	"github.com/quantcheck/quantcheck/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/quantcheck.yaml", "path to config file")
	docsDir := flag.String("docs", "", "docs directory (overrides config)")
	run := flag.String("run", "", "only check doc files whose relative path matches this regexp")
	verbose := flag.Bool("verbose", false, "print details for passing snippets too")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Setup logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	dir := cfg.Docs.Dir
	if *docsDir != "" {
		dir = *docsDir
	}

	var filter *regexp.Regexp
	if *run != "" {
		filter, err = regexp.Compile(*run)
		if err != nil {
			logger.Error("bad --run pattern", "error", err)
			os.Exit(1)
		}
	}

	checker := doccheck.New(cfg.Docs.SnippetTimeout.Std(), logger)

	q := report.NewQueue(16)
	go func() {
		defer q.Close()
		if err := checker.CheckDir(context.Background(), dir, filter, cfg.Docs.Parallelism, q); err != nil {
			q.Send(report.Fail("doccheck", err.Error()))
		}
	}()

	summary := report.NewPrinter(os.Stdout, *verbose).Consume(q)
	os.Exit(summary.ExitCode())
}
