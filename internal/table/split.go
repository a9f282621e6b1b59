package table

import (
	"strconv"
)

// Series is a labelled sequence of numbers ready for plotting.
type Series struct {
	Label  string
	Values []float64
}

// Floats converts every cell of a column to float64. The column name is used
// in a *ConversionError.
func Floats[T Cell](column string, cells []T) ([]float64, error) {
	out := make([]float64, 0, len(cells))
	for i, c := range cells {
		f, err := toFloat(column, i, c)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func toFloat[T Cell](column string, row int, c T) (float64, error) {
	switch v := any(c).(type) {
	case string:
		return parseFloat(column, row, v)
	case float64:
		return v, nil
	}
	panic("unreachable")
}

// label renders a key cell as a series label.
func label[T Cell](c T) string {
	switch v := any(c).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	panic("unreachable")
}

// Split partitions values by the distinct values of the parallel keys
// slice, converting each selected value to float64. Pairs are formed
// position-wise up to the shorter of the two slices.
//
// Each series is labelled with its key. Series are ordered by first
// appearance of the key and values within a series keep row order.
func Split[T Cell](keys, values []T) ([]Series, error) {
	n := min(len(keys), len(values))
	index := make(map[T]int)
	var out []Series
	for i := 0; i < n; i++ {
		f, err := toFloat("", i, values[i])
		if err != nil {
			return nil, err
		}
		g, ok := index[keys[i]]
		if !ok {
			g = len(out)
			index[keys[i]] = g
			out = append(out, Series{Label: label(keys[i])})
		}
		out[g].Values = append(out[g].Values, f)
	}
	return out, nil
}
