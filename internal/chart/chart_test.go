package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/specialistvlad/csvplot/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Render(t *testing.T) {
	testCases := []struct {
		name   string
		series []table.Series
		labels []string
	}{
		{
			name:   "single series",
			series: []table.Series{{Label: "latency", Values: []float64{1, 3, 2, 5, 4}}},
			labels: []string{"latency"},
		},
		{
			name: "groups of different length",
			series: []table.Series{
				{Label: "s1", Values: []float64{1, 2, 3, 4}},
				{Label: "s2", Values: []float64{-2, 0.5}},
			},
			labels: []string{"s1", "s2"},
		},
		{
			name:   "single point",
			series: []table.Series{{Label: "p", Values: []float64{7}}},
			labels: []string{"p"},
		},
		{
			name:   "constant series",
			series: []table.Series{{Label: "c", Values: []float64{3, 3, 3}}},
			labels: []string{"c"},
		},
		{
			name:   "long label",
			series: []table.Series{{Label: strings.Repeat("x", 64), Values: []float64{1, 2}}},
			labels: []string{strings.Repeat("x", 64)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			out := &bytes.Buffer{}
			r := NewTerminal(out, DefaultOptions())

			// --- Act ---
			err := r.Render("my chart", tc.series)

			// --- Assert ---
			require.NoError(t, err)
			text := out.String()
			assert.Contains(t, text, "my chart")
			for _, label := range tc.labels {
				assert.Contains(t, text, "• "+label, "legend should list every series")
			}
			// title + chart rows + legend
			assert.GreaterOrEqual(t, strings.Count(text, "\n"), DefaultHeight+2)
		})
	}
}

func TestTerminal_RenderUsesConfiguredSize(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewTerminal(out, Options{Height: 8, Width: 40})

	require.NoError(t, r.Render("small", []table.Series{{Label: "v", Values: []float64{1, 2, 3}}}))

	lines := strings.Split(out.String(), "\n")
	// title, 8 chart rows, legend, trailing empty string
	assert.Len(t, lines, 11)
}

func TestTerminal_RenderNoData(t *testing.T) {
	r := NewTerminal(&bytes.Buffer{}, DefaultOptions())

	err := r.Render("empty", nil)
	assert.ErrorIs(t, err, ErrNoData)

	err = r.Render("empty", []table.Series{{Label: "a"}})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestTerminal_RenderAllZero(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewTerminal(out, DefaultOptions())

	require.NoError(t, r.Render("zeros", []table.Series{{Label: "z", Values: []float64{0, 0, 0}}}))
	assert.Contains(t, out.String(), "(all 3 values are 0)")
}

func TestTerminal_RenderRejectsNonFinite(t *testing.T) {
	r := NewTerminal(&bytes.Buffer{}, DefaultOptions())

	err := r.Render("bad", []table.Series{{Label: "n", Values: []float64{1, math.NaN()}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-finite")
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Height: 2, Width: 80}.Validate())
	assert.Error(t, Options{Height: 15, Width: 10}.Validate())
}

func TestTerminal_AxisLabel(t *testing.T) {
	r := NewTerminal(&bytes.Buffer{}, Options{Height: 6, Width: 40})

	assert.Equal(t, "abc", r.axisLabel("abc"))
	assert.Equal(t, "abcd", r.axisLabel("abcdefgh"))
	// Multi-byte runes are never split.
	assert.Equal(t, "éé", r.axisLabel("ééé"))
}
