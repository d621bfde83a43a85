// examplecheck launches each example program as a subprocess, captures its
// output, and asserts on the patterns and artifacts the suite declares.
// Usage: go run ./cmd/examplecheck --config configs/quantcheck.yaml
//
// Suites may reference ${QUANTCHECK_OUT}, the artifact directory created
// for the run (kept with --keep-artifacts).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/quantcheck/quantcheck/internal/config"
	"github.com/quantcheck/quantcheck/internal/harness"
	"github.com/quantcheck/quantcheck/internal/report"
	"github.com/quantcheck/quantcheck/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "configs/quantcheck.yaml", "path to config file")
	only := flag.String("example", "", "run a single example by name")
	verbose := flag.Bool("verbose", false, "print details for passing checks too")
	keepArtifacts := flag.Bool("keep-artifacts", false, "do not delete the artifact directory")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return 0
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
		return 1
	}

	// The artifact directory must exist before the suite is loaded so that
	// ${QUANTCHECK_OUT} references expand to it.
	artifactDir := cfg.Examples.ArtifactDir
	if artifactDir == "" {
		artifactDir, err = os.MkdirTemp("", "quantcheck-artifacts-*")
		if err != nil {
			logger.Error("failed to create artifact dir", "error", err)
			return 1
		}
		if *keepArtifacts {
			logger.Info("keeping artifacts", "dir", artifactDir)
		} else {
			defer os.RemoveAll(artifactDir)
		}
	}
	os.Setenv("QUANTCHECK_OUT", artifactDir)

	suite, err := harness.LoadSuite(cfg.Examples.Suite)
	if err != nil {
		logger.Error("failed to load suite", "error", err)
		return 1
	}

	examples := suite.Examples
	if *only != "" {
		ex, err := suite.ByName(*only)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		examples = []harness.Example{ex}
	}

	runner := harness.NewRunner(cfg.Examples.Timeout.Std(), cfg.Examples.WorkDir, logger)

	q := report.NewQueue(16)
	done := make(chan report.Summary, 1)
	go func() {
		done <- report.NewPrinter(os.Stdout, *verbose).Consume(q)
	}()

	// One subprocess per example, run to completion, then every declared
	// check against the cached capture.
	ctx := context.Background()
	for _, ex := range examples {
		capture, err := runner.Run(ctx, ex)
		if err != nil {
			q.Send(report.Fail(ex.Name, "failed to launch: "+err.Error()))
			continue
		}
		for _, chk := range harness.Evaluate(ex, capture) {
			r := report.Result{Name: ex.Name + ": " + chk.Name, Passed: chk.Passed}
			if chk.Detail != "" {
				r.Details = []string{chk.Detail}
			}
			q.Send(r)
		}
	}

	q.Close()
	return (<-done).ExitCode()
}
