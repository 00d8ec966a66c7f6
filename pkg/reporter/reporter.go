// Package reporter renders a lint Report to an io.Writer: the
// line-oriented diagnostic list (spec §6), the windowed source context
// around each contiguous group of topic lines (spec §4.6.2), and the
// trailing "Unused suppression" lines for suppression entries that
// never matched.
//
// Grounded on the teacher's pkg/reporter/text.go: a buffered styled
// writer built from internal/ui/pretty, generalized here from Markdown
// diagnostics grouped by file to whitespace-shape mistakes grouped by
// contiguous source block.
package reporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/harlowdrift/tallint/internal/ui/pretty"
	"github.com/harlowdrift/tallint/pkg/cst"
	"github.com/harlowdrift/tallint/pkg/indent"
	"github.com/harlowdrift/tallint/pkg/suppress"
)

// bufWriterSize is the buffer size for the output writer (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures a Reporter's behavior (spec §6).
type Options struct {
	// Writer is the destination for diagnostics (typically os.Stdout).
	Writer io.Writer

	// Color controls colorized output: "auto" (default), "always", "never".
	Color string

	// ContextSize is the context window size in lines around each
	// reported line. 0 means no source is shown, only diagnostics.
	ContextSize int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{Writer: os.Stdout, Color: "auto", ContextSize: 2}
}

// Reporter renders one file's accumulated *indent.Report.
type Reporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// New creates a Reporter writing to opts.Writer, falling back to
// DefaultOptions' writer when the caller left it unset.
func New(opts Options) *Reporter {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Reporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render writes rep's diagnostics, in ascending-line blocks, each
// followed (when ContextSize > 0) by its windowed source context, with
// a divider between non-adjacent blocks. Returns the number of
// mistakes printed.
func (r *Reporter) Render(source []byte, rep *indent.Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	pos := cst.NewPositionIndex(source)
	blocks := BuildBlocks(rep.TopicLines, r.opts.ContextSize, pos.LineCount())

	var total int
	for i, block := range blocks {
		if i > 0 {
			fmt.Fprintln(r.bw, r.styles.FormatDivider())
		}
		total += r.renderBlock(rep, pos, source, block)
	}
	return total, nil
}

func (r *Reporter) renderBlock(rep *indent.Report, pos *cst.PositionIndex, source []byte, block Block) int {
	var mistakes []indent.Mistake
	for line := block.Start; line <= block.End; line++ {
		mistakes = append(mistakes, rep.MistakeLines[line]...)
	}
	sort.Slice(mistakes, func(i, j int) bool {
		if mistakes[i].Line != mistakes[j].Line {
			return mistakes[i].Line < mistakes[j].Line
		}
		return mistakes[i].Column < mistakes[j].Column
	})

	for _, m := range mistakes {
		fmt.Fprintln(r.bw, r.styles.FormatDiagnostic(rep.File, m))
	}

	if r.opts.ContextSize > 0 {
		for line := block.Start; line <= block.End; line++ {
			marker := byte(' ')
			switch {
			case len(rep.MistakeLines[line]) > 0:
				marker = '!'
			case rep.TopicLines[line]:
				marker = '>'
			}
			text := string(pos.LineContent(source, line))
			fmt.Fprintln(r.bw, r.styles.FormatContextLine(marker, line, text))
		}
	}

	return len(mistakes)
}

// RenderUnused writes one "Unused suppression: <kind> <line>:<col>"
// line per entry that never matched a diagnostic (spec §6).
func (r *Reporter) RenderUnused(tags []suppress.Tag) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()
	for _, tag := range tags {
		fmt.Fprintln(r.bw, r.styles.FormatUnusedSuppression(tag.Kind, tag.Line, tag.Col))
	}
	return nil
}
