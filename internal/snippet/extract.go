package snippet

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Snippet is one runnable code block found in a document.
type Snippet struct {
	File      string // Document path
	Line      int    // 1-based line of the opening fence
	Source    string // Snippet source
	Output    string // Claimed stdout (empty unless HasOutput)
	HasOutput bool   // Whether an output fence follows
	Skip      bool   // Tagged "go skip": extracted, never executed
}

// Name returns a stable identifier for reports, e.g. "docs/quickstart.md:12".
func (s Snippet) Name() string {
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

type fence struct {
	info string
	line int
	body string
}

// ExtractFile parses the markdown file at path and returns its snippets in
// document order.
func ExtractFile(path string) ([]Snippet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read doc: %w", err)
	}
	return Extract(path, src)
}

// Extract parses markdown source and returns its snippets. The file name is
// used only for reporting.
func Extract(file string, src []byte) ([]Snippet, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var fences []fence
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		info := ""
		if fcb.Info != nil {
			info = strings.TrimSpace(string(fcb.Info.Segment.Value(src)))
		}

		var body bytes.Buffer
		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(src))
		}

		fences = append(fences, fence{
			info: info,
			line: fenceLine(src, fcb, lines),
			body: body.String(),
		})
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	var snippets []Snippet
	for i, f := range fences {
		lang, rest, _ := strings.Cut(f.info, " ")
		if lang != "go" {
			continue
		}

		s := Snippet{
			File:   file,
			Line:   f.line,
			Source: f.body,
			Skip:   strings.TrimSpace(rest) == "skip",
		}
		if i+1 < len(fences) && fences[i+1].info == "output" {
			s.Output = fences[i+1].body
			s.HasOutput = true
		}
		snippets = append(snippets, s)
	}
	return snippets, nil
}

// fenceLine computes the 1-based line number of the opening fence.
func fenceLine(src []byte, fcb *ast.FencedCodeBlock, lines *text.Segments) int {
	if fcb.Info != nil {
		// The info string sits on the opening fence line itself.
		return bytes.Count(src[:fcb.Info.Segment.Start], []byte("\n")) + 1
	}
	if lines.Len() > 0 {
		// The opening fence is the line before the first body line.
		return bytes.Count(src[:lines.At(0).Start], []byte("\n"))
	}
	return 1
}
