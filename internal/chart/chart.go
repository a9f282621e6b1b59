package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	tm "github.com/buger/goterm"
	"github.com/specialistvlad/csvplot/internal/table"
)

const (
	// DefaultHeight is the chart height in terminal rows.
	DefaultHeight = 15
	// DefaultWidth is the chart width in terminal columns.
	DefaultWidth = 80

	// MinHeight and MinWidth keep goterm's axis labels inside its buffer.
	MinHeight = 5
	MinWidth  = 20
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data points to plot")

// Renderer draws one chart per call.
type Renderer interface {
	Render(title string, series []table.Series) error
}

// Options sets the chart size.
type Options struct {
	Height int
	Width  int
}

// DefaultOptions returns the 15x80 chart size.
func DefaultOptions() Options {
	return Options{Height: DefaultHeight, Width: DefaultWidth}
}

// Validate checks the chart is large enough to hold its axes.
func (o Options) Validate() error {
	if o.Height < MinHeight {
		return fmt.Errorf("chart height must be at least %d, got %d", MinHeight, o.Height)
	}
	if o.Width < MinWidth {
		return fmt.Errorf("chart width must be at least %d, got %d", MinWidth, o.Width)
	}
	return nil
}

// Terminal renders charts with goterm and writes them to an io.Writer.
type Terminal struct {
	w    io.Writer
	opts Options
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	return &Terminal{w: w, opts: opts}
}

// Render writes a bold title, the line chart with one colored line per
// series and a legend. The x axis is the index within each series; shorter
// series hold their last value so every series spans the same axis.
func (t *Terminal) Render(title string, series []table.Series) (err error) {
	series = nonEmpty(series)
	if len(series) == 0 {
		return fmt.Errorf("chart %q: %w", title, ErrNoData)
	}
	for _, s := range series {
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("chart %q: series %q contains non-finite values", title, s.Label)
			}
		}
	}

	if allZero(series) {
		_, err = fmt.Fprintf(t.w, "%s\n(all %d values are 0)\n", tm.Bold(title), countValues(series))
		return err
	}

	// goterm indexes its buffer directly and panics on extreme inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("chart %q: rendering failed: %v", title, r)
		}
	}()

	lc := tm.NewLineChart(t.opts.Width, t.opts.Height)
	out := lc.Draw(t.dataTable(series))

	var b strings.Builder
	b.WriteString(tm.Bold(title))
	b.WriteString("\n")
	b.WriteString(out)
	b.WriteString(legend(series))
	b.WriteString("\n")

	_, err = io.WriteString(t.w, b.String())
	return err
}

func (t *Terminal) dataTable(series []table.Series) *tm.DataTable {
	data := new(tm.DataTable)
	data.AddColumn("index")
	for _, s := range series {
		data.AddColumn(t.axisLabel(s.Label))
	}

	// A single point has no x range, so it is drawn as a flat segment.
	n := 2
	for _, s := range series {
		n = max(n, len(s.Values))
	}
	for i := 0; i < n; i++ {
		row := make([]float64, 0, len(series)+1)
		row = append(row, float64(i))
		for _, s := range series {
			row = append(row, s.Values[min(i, len(s.Values)-1)])
		}
		data.AddRow(row...)
	}
	return data
}

// axisLabel shortens a label so goterm can write it vertically beside the
// y axis without leaving the chart. goterm positions the label by its byte
// length, so the limit is in bytes.
func (t *Terminal) axisLabel(label string) string {
	limit := t.opts.Height - 2
	if len(label) <= limit {
		return label
	}
	var b strings.Builder
	for _, r := range label {
		if b.Len()+utf8.RuneLen(r) > limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// legend matches goterm's color assignment: the i-th series uses color i+1.
func legend(series []table.Series) string {
	parts := make([]string, 0, len(series))
	for i, s := range series {
		parts = append(parts, tm.Color("• "+s.Label, i+1))
	}
	return strings.Join(parts, "  ")
}

func nonEmpty(series []table.Series) []table.Series {
	out := make([]table.Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func allZero(series []table.Series) bool {
	for _, s := range series {
		for _, v := range s.Values {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

func countValues(series []table.Series) int {
	n := 0
	for _, s := range series {
		n += len(s.Values)
	}
	return n
}
