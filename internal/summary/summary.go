// Package summary computes descriptive statistics for plotted series.
package summary

import (
	"fmt"
	"io"

	tm "github.com/buger/goterm"
	"github.com/specialistvlad/csvplot/internal/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats describes one series.
type Stats struct {
	Label  string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Describe returns statistics for every non-empty series, in order.
func Describe(series []table.Series) []Stats {
	out := make([]Stats, 0, len(series))
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(s.Values, nil)
		if len(s.Values) < 2 {
			std = 0
		}
		out = append(out, Stats{
			Label:  s.Label,
			Count:  len(s.Values),
			Min:    floats.Min(s.Values),
			Max:    floats.Max(s.Values),
			Mean:   mean,
			StdDev: std,
		})
	}
	return out
}

// Write prints stats as an aligned table.
func Write(w io.Writer, stats []Stats) error {
	tbl := tm.NewTable(0, 8, 2, ' ', 0)
	fmt.Fprintf(tbl, "series\tcount\tmin\tmax\tmean\tstddev\n")
	for _, s := range stats {
		fmt.Fprintf(tbl, "%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\n", s.Label, s.Count, s.Min, s.Max, s.Mean, s.StdDev)
	}
	_, err := io.WriteString(w, tbl.String())
	return err
}
