package doccheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"golang.org/x/sync/errgroup"

	"github.com/quantcheck/quantcheck/internal/report"
	"github.com/quantcheck/quantcheck/internal/snippet"
)

// Checker validates documentation snippets.
type Checker struct {
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a checker with the given per-snippet timeout.
func New(timeout time.Duration, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{timeout: timeout, logger: logger}
}

// CheckDir walks dir for *.md files (optionally filtered by a regexp over
// the relative path) and checks them concurrently, at most parallelism
// files at a time. Results go to q; a snippet failure never stops other
// files. The caller closes q after CheckDir returns.
func (c *Checker) CheckDir(ctx context.Context, dir string, filter *regexp.Regexp, parallelism int, q *report.Queue) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		if filter != nil && !filter.MatchString(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk docs dir: %w", err)
	}
	sort.Strings(files)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, file := range files {
		g.Go(func() error {
			results, err := c.CheckFile(ctx, file)
			if err != nil {
				q.Send(report.Fail(file, err.Error()))
				return nil
			}
			for _, r := range results {
				q.Send(r)
			}
			return nil
		})
	}
	return g.Wait()
}

// CheckFile extracts and runs every snippet in one document. Snippets run
// sequentially in a shared interpreter; after a timeout the interpreter is
// abandoned and the file's remaining snippets are reported as failed.
func (c *Checker) CheckFile(ctx context.Context, path string) ([]report.Result, error) {
	snippets, err := snippet.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	if len(snippets) == 0 {
		c.logger.Debug("no snippets", "file", path)
		return nil, nil
	}

	var stdout, stderr bytes.Buffer
	i := interp.New(interp.Options{Stdout: &stdout, Stderr: &stderr})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load stdlib symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("load library symbols: %w", err)
	}

	results := make([]report.Result, 0, len(snippets))
	dead := false
	for _, s := range snippets {
		switch {
		case s.Skip:
			results = append(results, report.Result{Name: s.Name(), Passed: true, Details: []string{"skipped"}})
		case dead:
			results = append(results, report.Fail(s.Name(), "not run: an earlier snippet in this file timed out"))
		default:
			r, timedOut := c.runSnippet(ctx, i, &stdout, &stderr, s)
			dead = timedOut
			results = append(results, r)
		}
	}
	return results, nil
}

func (c *Checker) runSnippet(ctx context.Context, i *interp.Interpreter, stdout, stderr *bytes.Buffer, s snippet.Snippet) (report.Result, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stdout.Reset()
	stderr.Reset()
	start := time.Now()
	err := eval(ctx, i, s.Source)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return report.Fail(s.Name(), fmt.Sprintf("timed out after %s", c.timeout)), true
		}
		details := []string{"execution failed: " + err.Error()}
		details = append(details, stderrDetail(stderr)...)
		return report.Fail(s.Name(), details...), false
	}

	if s.HasOutput {
		got := normalize(stdout.String())
		want := normalize(s.Output)
		if got != want {
			details := []string{"output mismatch"}
			details = append(details, prefixLines("want: ", want)...)
			details = append(details, prefixLines("got:  ", got)...)
			details = append(details, stderrDetail(stderr)...)
			return report.Fail(s.Name(), details...), false
		}
	}

	c.logger.Debug("snippet ok", "snippet", s.Name(), "elapsed", elapsed)
	return report.Pass(s.Name(), elapsed), false
}

// eval runs snippet source in the interpreter. A snippet written as a full
// program (package clause first) is evaluated whole; yaegi runs its main
// after the declarations. Fragment snippets have their leading import
// declarations evaluated one by one, since the interpreter accepts imports
// and statements only as separate increments; the remaining statements then
// execute in the shared global scope. Interpreter panics surface as errors.
func eval(ctx context.Context, i *interp.Interpreter, src string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("snippet panicked: %v", r)
		}
	}()

	if strings.HasPrefix(strings.TrimSpace(src), "package ") {
		_, err = i.EvalWithContext(ctx, src)
		return err
	}

	imports, rest := splitImports(src)
	for _, imp := range imports {
		if _, err = i.EvalWithContext(ctx, imp); err != nil {
			return err
		}
	}
	if strings.TrimSpace(rest) == "" {
		return nil
	}
	_, err = i.EvalWithContext(ctx, rest)
	return err
}

// splitImports separates the import declarations at the top of a fragment
// snippet from the statements that follow. Unknown import paths surface
// from the interpreter naming the path.
func splitImports(src string) (imports []string, rest string) {
	lines := strings.Split(src, "\n")
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
			i++
		case strings.HasPrefix(trimmed, "import ("):
			start := i
			for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), ")") {
				i++
			}
			if i < len(lines) {
				i++ // closing paren
			}
			imports = append(imports, strings.Join(lines[start:i], "\n"))
		case strings.HasPrefix(trimmed, "import "):
			imports = append(imports, trimmed)
			i++
		default:
			return imports, strings.Join(lines[i:], "\n")
		}
	}
	return imports, ""
}

// normalize strips trailing whitespace per line and trailing newlines, the
// only differences tolerated between claimed and actual output.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func stderrDetail(stderr *bytes.Buffer) []string {
	if stderr.Len() == 0 {
		return nil
	}
	return prefixLines("stderr: ", normalize(stderr.String()))
}

func prefixLines(prefix, s string) []string {
	if s == "" {
		return []string{prefix + "(no output)"}
	}
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	pad := strings.Repeat(" ", len(prefix))
	for i, line := range lines {
		if i == 0 {
			out[i] = prefix + line
		} else {
			out[i] = pad + line
		}
	}
	return out
}
