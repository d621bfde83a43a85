// samplegen converts registered source CSVs into Go source files embedded
// in the sampledata package.
// Usage: go run ./cmd/samplegen --config configs/quantcheck.yaml --all
//
// With --validate-sources the source CSVs are checked against the registry
// (row counts, timestamps, price sanity) and nothing is written.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantcheck/quantcheck/internal/codegen"
	"github.com/quantcheck/quantcheck/internal/config"
	"github.com/quantcheck/quantcheck/internal/csvconv"
	"github.com/quantcheck/quantcheck/internal/dataset"
	"github.com/quantcheck/quantcheck/internal/report"
	"github.com/quantcheck/quantcheck/internal/version"
)

// stringsFlag collects repeated --dataset values.
type stringsFlag []string

func (f *stringsFlag) String() string { return strings.Join(*f, ",") }

func (f *stringsFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	configPath := flag.String("config", "configs/quantcheck.yaml", "path to config file")
	all := flag.Bool("all", false, "generate every registered dataset")
	validateSources := flag.Bool("validate-sources", false, "validate source CSVs and exit")
	verbose := flag.Bool("verbose", false, "log per-column inference decisions")
	showVersion := flag.Bool("version", false, "print version and exit")
	var names stringsFlag
	flag.Var(&names, "dataset", "dataset name to generate (repeatable)")
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

	reg, err := dataset.LoadRegistry(cfg.Datasets.Registry, cfg.Datasets.SourceDir)
	if err != nil {
		logger.Error("failed to load dataset registry", "error", err)
		os.Exit(1)
	}

	metas, err := selectDatasets(reg, *all, *validateSources, names)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	q := report.NewQueue(len(metas))
	done := make(chan report.Summary, 1)
	go func() {
		done <- report.NewPrinter(os.Stdout, *verbose).Consume(q)
	}()

	if *validateSources {
		for _, m := range metas {
			if err := reg.ValidateSource(m); err != nil {
				q.Send(report.Fail("validate "+m.Name, err.Error()))
			} else {
				q.Send(report.Result{Name: "validate " + m.Name, Passed: true})
			}
		}
	} else {
		generate(cfg, reg, metas, q, logger)
	}

	q.Close()
	os.Exit((<-done).ExitCode())
}

// selectDatasets resolves the --all/--dataset flags against the registry.
// --validate-sources with no selection means every dataset.
func selectDatasets(reg *dataset.Registry, all, validateSources bool, names []string) ([]dataset.Metadata, error) {
	if all || (validateSources && len(names) == 0) {
		return reg.Datasets, nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("nothing selected: pass --all or --dataset NAME")
	}
	metas := make([]dataset.Metadata, 0, len(names))
	for _, name := range names {
		m, err := reg.ByName(name)
		if err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, nil
}

func generate(cfg *config.Config, reg *dataset.Registry, metas []dataset.Metadata, q *report.Queue, logger *slog.Logger) {
	generated := false
	for _, m := range metas {
		if err := generateOne(cfg, reg, m, logger); err != nil {
			q.Send(report.Fail("generate "+m.Name, err.Error()))
			continue
		}
		generated = true
		q.Send(report.Result{
			Name:    "generate " + m.Name,
			Passed:  true,
			Details: []string{fmt.Sprintf("wrote %s", filepath.Join(cfg.Datasets.OutputDir, codegen.FileName(m.Name)))},
		})
	}

	// The lookup map covers every registered dataset, so rewrite it
	// whenever any dataset was.
	if generated {
		src, err := codegen.EmitRegistry(cfg.Datasets.Package, reg.Datasets)
		if err != nil {
			q.Send(report.Fail("generate registry", err.Error()))
			return
		}
		path := filepath.Join(cfg.Datasets.OutputDir, "datasets_gen.go")
		if err := os.WriteFile(path, src, 0644); err != nil {
			q.Send(report.Fail("generate registry", err.Error()))
			return
		}
		q.Send(report.Result{Name: "generate registry", Passed: true, Details: []string{"wrote " + path}})
	}
}

func generateOne(cfg *config.Config, reg *dataset.Registry, m dataset.Metadata, logger *slog.Logger) error {
	table, err := csvconv.ConvertFile(reg.SourcePath(m))
	if err != nil {
		return err
	}
	for _, col := range table.Columns {
		logger.Debug("inferred column", "dataset", m.Name, "column", col.Name, "kind", col.Kind.String())
	}
	if table.Rows != m.Rows {
		return fmt.Errorf("source has %d rows, registry declares %d", table.Rows, m.Rows)
	}

	candles, err := table.Candles()
	if err != nil {
		return err
	}
	src, err := codegen.EmitDataset(cfg.Datasets.Package, m, candles)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cfg.Datasets.OutputDir, codegen.FileName(m.Name)), src, 0644)
}
