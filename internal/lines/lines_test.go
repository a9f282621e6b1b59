package lines

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq Seq) []string {
	t.Helper()
	var out []string
	for line, err := range seq {
		require.NoError(t, err)
		out = append(out, line)
	}
	return out
}

func TestCursor_Next(t *testing.T) {
	c := NewCursor(strings.NewReader("a,b\n1,2\n3,4"))

	line, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", line)

	line, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", line)

	// Last line has no newline but is still returned.
	line, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, "3,4", line)

	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)

	// The cursor stays exhausted.
	_, err = c.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCursor_EmptyInput(t *testing.T) {
	_, err := NewCursor(strings.NewReader("")).Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSkipComments(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		marker   string
		expected []string
	}{
		{
			name:     "leading comments",
			input:    "# generated\n# by bench\na,b\n1,2\n",
			marker:   "#",
			expected: []string{"a,b\n", "1,2\n"},
		},
		{
			name:     "interleaved comments",
			input:    "a,b\n1,2\n# checkpoint\n3,4\n#\n",
			marker:   "#",
			expected: []string{"a,b\n", "1,2\n", "3,4\n"},
		},
		{
			name:     "marker only counts at line start",
			input:    "a,b\n # not a comment\n1,2 # trailing\n",
			marker:   "#",
			expected: []string{"a,b\n", " # not a comment\n", "1,2 # trailing\n"},
		},
		{
			name:     "custom marker",
			input:    "// note\na\n#1\n",
			marker:   "//",
			expected: []string{"a\n", "#1\n"},
		},
		{
			name:     "empty marker keeps everything",
			input:    "#a\nb\n",
			marker:   "",
			expected: []string{"#a\n", "b\n"},
		},
		{
			name:     "only comments",
			input:    "#a\n#b\n",
			marker:   "#",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(t, SkipComments(Read(strings.NewReader(tc.input)), tc.marker))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSkipComments_StopsEarly(t *testing.T) {
	seq := SkipComments(Read(strings.NewReader("#x\na\nb\nc\n")), "#")

	var got []string
	for line, err := range seq {
		require.NoError(t, err)
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a\n", "b\n"}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSkipComments_ForwardsErrors(t *testing.T) {
	var gotErr error
	for _, err := range SkipComments(Read(failingReader{}), "#") {
		gotErr = err
	}
	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), "disk on fire")
}
