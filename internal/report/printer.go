package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Printer consumes a queue and writes one line per result plus a final
// summary line.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewPrinter creates a printer. With verbose set, detail lines are printed
// for passing checks too.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// Consume receives results until the queue is closed and drained, then
// prints the summary and returns it.
func (p *Printer) Consume(q *Queue) Summary {
	start := time.Now()
	s := Summary{RunID: uuid.New()}

	for {
		r, ok := q.Receive()
		if !ok {
			break
		}
		p.print(r)
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}

	s.Elapsed = time.Since(start).Round(time.Millisecond)
	fmt.Fprintf(p.w, "%d passed, %d failed in %s (run %s)\n", s.Passed, s.Failed, s.Elapsed, s.RunID)
	return s
}

func (p *Printer) print(r Result) {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	if r.Duration > 0 {
		fmt.Fprintf(p.w, "%s %s (%s)\n", status, r.Name, r.Duration.Round(time.Millisecond))
	} else {
		fmt.Fprintf(p.w, "%s %s\n", status, r.Name)
	}
	if !r.Passed || p.verbose {
		for _, line := range r.Details {
			fmt.Fprintf(p.w, "    %s\n", line)
		}
	}
}
