package data

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a design matrix that remembers its column labels, so callers can
// drop metadata columns (like the week number) by name before fitting.
type Matrix struct {
	Cols []string
	Data *mat.Dense
}

func NewMatrix(cols []string, data *mat.Dense) (*Matrix, error) {
	_, c := data.Dims()
	if c != len(cols) {
		return nil, fmt.Errorf("matrix has %d columns, got %d labels", c, len(cols))
	}
	return &Matrix{Cols: cols, Data: data}, nil
}

func (m *Matrix) NumRows() int {
	r, _ := m.Data.Dims()
	return r
}

func (m *Matrix) HasColumn(name string) bool {
	for _, col := range m.Cols {
		if col == name {
			return true
		}
	}
	return false
}

// Drop returns a copy of the matrix without the named columns. Names that are
// not present are ignored.
func (m *Matrix) Drop(names ...string) *Matrix {
	dropped := make(map[string]bool, len(names))
	for _, n := range names {
		dropped[n] = true
	}

	var keep []int
	var cols []string
	for j, col := range m.Cols {
		if !dropped[col] {
			keep = append(keep, j)
			cols = append(cols, col)
		}
	}

	r, _ := m.Data.Dims()
	out := mat.NewDense(r, len(keep), nil)
	for i := 0; i < r; i++ {
		for k, j := range keep {
			out.Set(i, k, m.Data.At(i, j))
		}
	}
	return &Matrix{Cols: cols, Data: out}
}

// Matrix builds a labeled design matrix from the named frame columns.
func (f *Frame) Matrix(cols []string) (*Matrix, error) {
	vals, err := f.Values(cols)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("cannot build matrix from empty frame")
	}

	out := mat.NewDense(len(vals), len(cols), nil)
	for i, row := range vals {
		out.SetRow(i, row)
	}
	return &Matrix{Cols: append([]string(nil), cols...), Data: out}, nil
}
