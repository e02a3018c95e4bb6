package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// table is a header-indexed CSV file held in memory.
type table struct {
	name   string
	header map[string]int
	rows   []row
}

// row is one data record with its source line.
type row struct {
	t      *table
	fields []string
	line   int
}

// readTable reads a comma-separated file with a header row.
// Every column in required must be present in the header.
func readTable(r io.Reader, name string, required []string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headerFields, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{File: name, Column: firstOrEmpty(required)}
		}
		return nil, fmt.Errorf("read header of %s: %w", name, err)
	}

	t := &table{name: name, header: make(map[string]int, len(headerFields))}
	for i, h := range headerFields {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		h = strings.TrimSpace(h)
		if _, exists := t.header[h]; !exists {
			t.header[h] = i
		}
	}

	for _, col := range required {
		if _, ok := t.header[col]; !ok {
			return nil, &SchemaError{File: name, Column: col}
		}
	}

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(fields) {
			continue
		}
		t.rows = append(t.rows, row{t: t, fields: fields, line: line})
	}

	return t, nil
}

func firstOrEmpty(cols []string) string {
	if len(cols) == 0 {
		return ""
	}
	return cols[0]
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// has reports whether the table header contains col.
func (t *table) has(col string) bool {
	_, ok := t.header[col]
	return ok
}

// str returns the trimmed cell, or "" when the column is absent or the row is short.
func (r row) str(col string) string {
	i, ok := r.t.header[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// count parses an integer counting stat. Empty or absent cells are 0.
// Integral floats ("12.0") are accepted.
func (r row) count(col string) (int, error) {
	s := r.str(col)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.parseError(col, s, err)
	}
	if f != math.Trunc(f) {
		return 0, r.parseError(col, s, fmt.Errorf("not an integer"))
	}
	return int(f), nil
}

// ratio parses a real-valued cell. Empty or absent cells are NaN.
func (r row) ratio(col string) (float64, error) {
	s := r.str(col)
	if s == "" {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.parseError(col, s, err)
	}
	return f, nil
}

// required parses a real-valued cell that must be present.
func (r row) required(col string) (float64, error) {
	s := r.str(col)
	if s == "" {
		return 0, r.parseError(col, s, fmt.Errorf("empty value"))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.parseError(col, s, err)
	}
	return f, nil
}

func (r row) parseError(col, value string, err error) error {
	return &ParseError{File: r.t.name, Line: r.line, Column: col, Value: value, Err: err}
}

// fieldReader collects the first parse error across many cell reads.
type fieldReader struct {
	r   row
	err error
}

func (f *fieldReader) count(col string) int {
	if f.err != nil {
		return 0
	}
	v, err := f.r.count(col)
	f.err = err
	return v
}

func (f *fieldReader) ratio(col string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.ratio(col)
	f.err = err
	return v
}

func (f *fieldReader) required(col string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.required(col)
	f.err = err
	return v
}

func (f *fieldReader) str(col string) string {
	return f.r.str(col)
}

// requiredInt parses an integer cell that must be present.
func (f *fieldReader) requiredInt(col string) int {
	if f.err != nil {
		return 0
	}
	s := f.r.str(col)
	if s == "" {
		f.err = f.r.parseError(col, s, fmt.Errorf("empty value"))
		return 0
	}
	return f.count(col)
}
