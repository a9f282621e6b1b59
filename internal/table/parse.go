package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/csvplot/internal/ctxlog"
	"github.com/specialistvlad/csvplot/internal/lines"
)

// DefaultDelimiter separates fields within a line.
const DefaultDelimiter = ","

// Options controls how files are parsed.
type Options struct {
	// CommentMarker starts lines that are skipped. Empty means
	// lines.DefaultCommentMarker.
	CommentMarker string
	// Delimiter separates fields. Empty means DefaultDelimiter.
	Delimiter string
	// Strict rejects rows whose field count differs from the header's.
	// Otherwise extra fields are dropped and missing ones leave columns short.
	Strict bool
}

// DefaultOptions returns the options matching the classic log format:
// comma separated, '#' comments, tolerant of ragged rows.
func DefaultOptions() Options {
	return Options{
		CommentMarker: lines.DefaultCommentMarker,
		Delimiter:     DefaultDelimiter,
	}
}

func (o Options) withDefaults() Options {
	if o.CommentMarker == "" {
		o.CommentMarker = lines.DefaultCommentMarker
	}
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	return o
}

// converter turns the raw text of one field into a cell.
type converter[T Cell] func(column string, row int, raw string) (T, error)

func asString(_ string, _ int, raw string) (string, error) {
	return strings.TrimSpace(raw), nil
}

func asFloat(column string, row int, raw string) (float64, error) {
	return parseFloat(column, row, raw)
}

func parseFloat(column string, row int, raw string) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ConversionError{Column: column, Row: row, Value: v, Err: err}
	}
	return f, nil
}

// Parse reads a table from r, naming it name in errors. The first
// non-comment line is the header. Unlike ParseFile it adds no FileColumn.
func Parse(name string, r io.Reader, opts Options) (*Table[string], error) {
	t, _, err := parse(r, opts.withDefaults(), asString)
	if err != nil {
		return nil, newParseError(name, err)
	}
	return t, nil
}

// ParseNumeric reads a table from r, converting every cell to float64.
func ParseNumeric(name string, r io.Reader, opts Options) (*Table[float64], error) {
	t, _, err := parse(r, opts.withDefaults(), asFloat)
	if err != nil {
		return nil, newParseError(name, err)
	}
	return t, nil
}

func parse[T Cell](r io.Reader, opts Options, convert converter[T]) (*Table[T], int, error) {
	next, stop := iter.Pull2(lines.SkipComments(lines.Read(r), opts.CommentMarker))
	defer stop()

	line, err, ok := next()
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, ErrNoHeader
	}

	var header []string
	for _, h := range strings.Split(line, opts.Delimiter) {
		header = append(header, strings.TrimSpace(h))
	}

	cols := make([][]T, len(header))
	rows := 0
	for {
		line, err, ok := next()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			break
		}
		rows++

		fields := strings.Split(line, opts.Delimiter)
		if opts.Strict && len(fields) != len(header) {
			return nil, 0, &rowError{row: rows, err: fmt.Errorf("%w: got %d fields, want %d", ErrRaggedRow, len(fields), len(header))}
		}
		for i := 0; i < len(fields) && i < len(header); i++ {
			v, err := convert(header[i], len(cols[i]), fields[i])
			if err != nil {
				return nil, 0, &rowError{row: rows, err: err}
			}
			cols[i] = append(cols[i], v)
		}
	}

	// Later duplicates of a header name replace earlier ones.
	t := New[T]()
	for i, name := range header {
		if !t.Has(name) {
			t.Names = append(t.Names, name)
		}
		t.Columns[name] = cols[i]
	}
	return t, rows, nil
}

// rowError ties a parse failure to a data row until the file path is known.
type rowError struct {
	row int
	err error
}

func (e *rowError) Error() string { return e.err.Error() }
func (e *rowError) Unwrap() error { return e.err }

func newParseError(path string, err error) error {
	var rerr *rowError
	if errors.As(err, &rerr) {
		return &ParseError{Path: path, Row: rerr.row, Err: rerr.err}
	}
	return &ParseError{Path: path, Err: err}
}

// ParseFile parses the file at path with the string variant and records path
// in FileColumn once per row.
func ParseFile(ctx context.Context, path string, opts Options) (*Table[string], error) {
	t, rows, err := parseFile(ctx, path, opts, asString)
	if err != nil {
		return nil, err
	}
	if !t.Has(FileColumn) {
		t.Names = append(t.Names, FileColumn)
	}
	t.Columns[FileColumn] = slices.Repeat([]string{path}, rows)
	return t, nil
}

// ParseNumericFile parses the file at path with the numeric variant.
func ParseNumericFile(ctx context.Context, path string, opts Options) (*Table[float64], error) {
	t, _, err := parseFile(ctx, path, opts, asFloat)
	return t, err
}

func parseFile[T Cell](ctx context.Context, path string, opts Options, convert converter[T]) (*Table[T], int, error) {
	logger := ctxlog.FromContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file '%s': %w", path, err)
	}
	defer file.Close()

	t, rows, err := parse(file, opts.withDefaults(), convert)
	if err != nil {
		return nil, 0, newParseError(path, err)
	}

	logger.Debug("Parsed input file.", "path", path, "rows", rows, "columns", len(t.Names))
	return t, rows, nil
}

// Load parses each path with ParseFile, lazily and in order. A file is only
// opened once the previous table has been consumed. The sequence ends after
// the first error.
func Load(ctx context.Context, paths []string, opts Options) iter.Seq2[*Table[string], error] {
	return load(ctx, paths, opts, ParseFile)
}

// LoadNumeric is Load for the numeric variant.
func LoadNumeric(ctx context.Context, paths []string, opts Options) iter.Seq2[*Table[float64], error] {
	return load(ctx, paths, opts, ParseNumericFile)
}

func load[T Cell](ctx context.Context, paths []string, opts Options, parseFn func(context.Context, string, Options) (*Table[T], error)) iter.Seq2[*Table[T], error] {
	return func(yield func(*Table[T], error) bool) {
		for _, path := range paths {
			t, err := parseFn(ctx, path, opts)
			if !yield(t, err) || err != nil {
				return
			}
		}
	}
}
