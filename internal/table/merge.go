package table

import (
	"fmt"
	"iter"
	"slices"
)

// MergeOptions controls Merge.
type MergeOptions struct {
	// Strict fails the merge when the resulting columns differ in length,
	// which happens when input files have divergent headers.
	Strict bool
}

// Merge concatenates same-named columns of all tables in the order they are
// yielded. A column missing from a later table is not padded, so the merged
// columns may end up with different lengths unless opts.Strict is set. The
// input tables are never modified.
func Merge[T Cell](tables iter.Seq2[*Table[T], error], opts MergeOptions) (*Table[T], error) {
	merged := New[T]()
	count := 0
	for t, err := range tables {
		if err != nil {
			return nil, err
		}
		count++
		for _, name := range t.Names {
			col := t.Columns[name]
			if !merged.Has(name) {
				// Copy so later appends never write into the source table.
				merged.add(name, slices.Clone(col)...)
				continue
			}
			merged.add(name, col...)
		}
	}

	if opts.Strict && !merged.Aligned() {
		return nil, fmt.Errorf("merging %d tables: %w", count, ErrMisaligned)
	}
	return merged, nil
}

// Tables adapts already parsed tables to the sequence Merge consumes.
func Tables[T Cell](tables ...*Table[T]) iter.Seq2[*Table[T], error] {
	return func(yield func(*Table[T], error) bool) {
		for _, t := range tables {
			if !yield(t, nil) {
				return
			}
		}
	}
}
