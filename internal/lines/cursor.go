package lines

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

// Seq is a lazy sequence of raw text lines. Each line keeps its trailing
// newline. A non-nil error ends the sequence.
type Seq = iter.Seq2[string, error]

// Cursor reads lines one at a time from an underlying reader. It is not
// restartable.
type Cursor struct {
	r   *bufio.Reader
	err error
}

// NewCursor returns a Cursor positioned at the start of r.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: bufio.NewReader(r)}
}

// Next returns the next line including its trailing newline, if any. It
// returns io.EOF once the input is exhausted.
func (c *Cursor) Next() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	line, err := c.r.ReadString('\n')
	if err != nil {
		c.err = err
		// A final line without a newline is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// Read exposes the lines of r as a Seq. Reaching the end of input ends the
// sequence without an error.
func Read(r io.Reader) Seq {
	return func(yield func(string, error) bool) {
		c := NewCursor(r)
		for {
			line, err := c.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(line, err) || err != nil {
				return
			}
		}
	}
}
