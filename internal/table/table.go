package table

// FileColumn is the reserved column holding the source path of each row in
// tables produced by the string parser.
const FileColumn = "__file__"

// Cell is the type of a single table value.
type Cell interface {
	string | float64
}

// Table maps column names to ordered cell sequences. Names records the
// column order of first appearance. Columns normally share one length, but
// ragged rows or merges of files with divergent headers can break that
// unless strict mode is used.
type Table[T Cell] struct {
	Names   []string
	Columns map[string][]T
}

// New returns an empty table.
func New[T Cell]() *Table[T] {
	return &Table[T]{Columns: make(map[string][]T)}
}

// Column returns the cells of the named column or a *KeyError.
func (t *Table[T]) Column(name string) ([]T, error) {
	col, ok := t.Columns[name]
	if !ok {
		return nil, &KeyError{Column: name}
	}
	return col, nil
}

// Has reports whether the table contains the named column.
func (t *Table[T]) Has(name string) bool {
	_, ok := t.Columns[name]
	return ok
}

// Rows returns the length of the longest column.
func (t *Table[T]) Rows() int {
	n := 0
	for _, col := range t.Columns {
		n = max(n, len(col))
	}
	return n
}

// Aligned reports whether every column has the same length.
func (t *Table[T]) Aligned() bool {
	n := -1
	for _, col := range t.Columns {
		if n == -1 {
			n = len(col)
		} else if len(col) != n {
			return false
		}
	}
	return true
}

// add appends v to the named column, registering the name on first use.
func (t *Table[T]) add(name string, v ...T) {
	col, ok := t.Columns[name]
	if !ok {
		t.Names = append(t.Names, name)
	}
	t.Columns[name] = append(col, v...)
}
