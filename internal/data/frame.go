package data

import (
	"fmt"
	"sort"
)

// DateColumn holds the week number of each observation. All other columns are
// plain numeric features or indicators.
const DateColumn = "as_of_date"

type Frame struct {
	cols  []string
	index map[string]int
	rows  [][]float64
}

func NewFrame(cols []string, rows [][]float64) (*Frame, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("frame must have at least one column")
	}

	index := make(map[string]int, len(cols))
	for i, col := range cols {
		if _, exists := index[col]; exists {
			return nil, fmt.Errorf("duplicate column: %s", col)
		}
		index[col] = i
	}

	for i, row := range rows {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(cols))
		}
	}

	f := &Frame{
		cols:  append([]string(nil), cols...),
		index: index,
		rows:  make([][]float64, len(rows)),
	}
	for i, row := range rows {
		f.rows[i] = append([]float64(nil), row...)
	}

	return f, nil
}

func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

func (f *Frame) NumRows() int {
	return len(f.rows)
}

func (f *Frame) Value(i int, name string) (float64, error) {
	j, ok := f.index[name]
	if !ok {
		return 0, fmt.Errorf("unknown column: %s", name)
	}
	if i < 0 || i >= len(f.rows) {
		return 0, fmt.Errorf("row %d out of range", i)
	}
	return f.rows[i][j], nil
}

func (f *Frame) Set(i int, name string, v float64) error {
	j, ok := f.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if i < 0 || i >= len(f.rows) {
		return fmt.Errorf("row %d out of range", i)
	}
	f.rows[i][j] = v
	return nil
}

func (f *Frame) Column(name string) ([]float64, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", name)
	}

	out := make([]float64, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[j]
	}
	return out, nil
}

// Values extracts the named columns as a row-major block, copied so callers
// can scale it without touching the frame.
func (f *Frame) Values(cols []string) ([][]float64, error) {
	idx := make([]int, len(cols))
	for k, col := range cols {
		j, ok := f.index[col]
		if !ok {
			return nil, fmt.Errorf("unknown column: %s", col)
		}
		idx[k] = j
	}

	out := make([][]float64, len(f.rows))
	for i, row := range f.rows {
		out[i] = make([]float64, len(cols))
		for k, j := range idx {
			out[i][k] = row[j]
		}
	}
	return out, nil
}

func (f *Frame) SetValues(cols []string, vals [][]float64) error {
	if len(vals) != len(f.rows) {
		return fmt.Errorf("value block has %d rows, frame has %d", len(vals), len(f.rows))
	}

	idx := make([]int, len(cols))
	for k, col := range cols {
		j, ok := f.index[col]
		if !ok {
			return fmt.Errorf("unknown column: %s", col)
		}
		idx[k] = j
	}

	for i, row := range vals {
		if len(row) != len(cols) {
			return fmt.Errorf("value row %d has %d values, expected %d", i, len(row), len(cols))
		}
		for k, j := range idx {
			f.rows[i][j] = row[k]
		}
	}
	return nil
}

func (f *Frame) Copy() *Frame {
	c, _ := NewFrame(f.cols, f.rows)
	return c
}

// Weeks returns the week number of every row, in row order.
func (f *Frame) Weeks() ([]int, error) {
	col, err := f.Column(DateColumn)
	if err != nil {
		return nil, err
	}

	weeks := make([]int, len(col))
	for i, v := range col {
		weeks[i] = int(v)
	}
	return weeks, nil
}

// DistinctWeeks returns the unique week numbers in ascending order.
func (f *Frame) DistinctWeeks() ([]int, error) {
	weeks, err := f.Weeks()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var distinct []int
	for _, w := range weeks {
		if !seen[w] {
			seen[w] = true
			distinct = append(distinct, w)
		}
	}
	sort.Ints(distinct)
	return distinct, nil
}

// FilterWeeks returns the rows whose week number satisfies keep.
func (f *Frame) FilterWeeks(keep func(week int) bool) (*Frame, error) {
	weeks, err := f.Weeks()
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	for i, w := range weeks {
		if keep(w) {
			rows = append(rows, f.rows[i])
		}
	}
	return NewFrame(f.cols, rows)
}

func (f *Frame) Select(cols []string) (*Frame, error) {
	vals, err := f.Values(cols)
	if err != nil {
		return nil, err
	}
	return NewFrame(cols, vals)
}
