package harness

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// Capture is everything recorded from one subprocess run.
type Capture struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
	TimedOut bool
}

// Runner launches examples and caches their captures.
type Runner struct {
	defaultTimeout time.Duration
	defaultDir     string
	logger         *slog.Logger

	cache *cache
}

// NewRunner creates a runner. defaultTimeout and defaultDir apply to
// examples that do not set their own.
func NewRunner(defaultTimeout time.Duration, defaultDir string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		defaultTimeout: defaultTimeout,
		defaultDir:     defaultDir,
		logger:         logger,
		cache:          newCache(),
	}
}

// Run returns the capture for an example, launching its subprocess on the
// first call and reusing the cached capture afterwards.
func (r *Runner) Run(ctx context.Context, ex Example) (*Capture, error) {
	return r.cache.get(ex.Name, func() (*Capture, error) {
		return r.launch(ctx, ex)
	})
}

func (r *Runner) launch(ctx context.Context, ex Example) (*Capture, error) {
	timeout := ex.Timeout.Std()
	if timeout == 0 {
		timeout = r.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, ex.Command, ex.Args...)
	cmd.Dir = ex.Dir
	if cmd.Dir == "" {
		cmd.Dir = r.defaultDir
	}
	cmd.Env = append(os.Environ(), ex.Env...)
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("launching example", "example", ex.Name, "command", ex.Command, "args", ex.Args)

	start := time.Now()
	err := cmd.Run()
	res := &Capture{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
		TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}

	switch {
	case err == nil:
		res.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else if !res.TimedOut {
			// Could not launch at all (missing binary, bad dir).
			return nil, err
		} else {
			res.ExitCode = -1
		}
	}

	r.logger.Debug("example finished",
		"example", ex.Name,
		"exit_code", res.ExitCode,
		"elapsed", res.Duration,
		"timed_out", res.TimedOut,
	)
	return res, nil
}
