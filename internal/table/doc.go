// Package table turns delimited text files into column-oriented tables,
// merges tables from several files into one dataset and splits a value
// column into series by the distinct values of a key column.
//
// Two parser variants exist. The string variant keeps every cell as text and
// records the originating path of each row in the FileColumn column. The
// numeric variant converts every cell to float64 while parsing and carries
// no file column.
package table
