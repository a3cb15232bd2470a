// Package layout assembles tokenized lines into raw records. A raw record
// is an ordered list of name/value pairs; interpretation of the names is
// left to the caller.
package layout

import "io"

// Field is one raw name/value pair of a record.
type Field struct {
	Name  string
	Value string
}

// Record is a raw record in input order.
type Record []Field

// LineSource yields tokenized lines and io.EOF at end of input.
type LineSource interface {
	Next() ([]string, error)
}

// Rows assembles row-major input: the first line is the header, each later
// line pairs positionally with the header names. One record per line;
// memory use is bounded by a single line.
type Rows struct {
	src    LineSource
	header []string
}

// NewRows returns a row-major assembler over src.
func NewRows(src LineSource) *Rows { return &Rows{src: src} }

// Next returns the next raw record, or io.EOF. Values beyond the header
// width are dropped; short lines leave trailing fields absent.
func (a *Rows) Next() (Record, error) {
	if a.header == nil {
		h, err := a.src.Next()
		if err != nil {
			return nil, err
		}
		a.header = h
	}
	line, err := a.src.Next()
	if err != nil {
		return nil, err
	}
	n := len(line)
	if n > len(a.header) {
		n = len(a.header)
	}
	rec := make(Record, 0, n)
	for i := 0; i < n; i++ {
		rec = append(rec, Field{Name: a.header[i], Value: line[i]})
	}
	return rec, nil
}

// Columns assembles transposed input: each line is a field name followed by
// that field's values for records 0..k. The number of implied records is
// unknown until every line has been read, so the assembler buffers the whole
// input and only then emits records, one per column index. A field line
// shorter than the widest contributes nothing at the missing columns.
type Columns struct {
	src     LineSource
	loaded  bool
	entries []columnEntry
	width   int
	col     int
}

type columnEntry struct {
	name   string
	values []string
}

// NewColumns returns a transposed assembler over src.
func NewColumns(src LineSource) *Columns { return &Columns{src: src} }

// Next returns the next raw record in increasing column order, or io.EOF.
// The first call consumes the entire source. Field order within a record
// follows the first appearance of each field line.
func (a *Columns) Next() (Record, error) {
	if !a.loaded {
		if err := a.load(); err != nil {
			return nil, err
		}
	}
	if a.col >= a.width {
		return nil, io.EOF
	}
	rec := make(Record, 0, len(a.entries))
	for _, e := range a.entries {
		if a.col < len(e.values) {
			rec = append(rec, Field{Name: e.name, Value: e.values[a.col]})
		}
	}
	a.col++
	return rec, nil
}

func (a *Columns) load() error {
	for {
		line, err := a.src.Next()
		if err == io.EOF {
			a.loaded = true
			return nil
		}
		if err != nil {
			return err
		}
		if len(line) == 0 {
			continue
		}
		e := columnEntry{name: line[0], values: line[1:]}
		if len(e.values) > a.width {
			a.width = len(e.values)
		}
		a.entries = append(a.entries, e)
	}
}
