package data

import (
	"math"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame([]string{"a", "b"}, [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}
	if f.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", f.NumRows())
	}

	v, err := f.Value(1, "b")
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != 4 {
		t.Errorf("expected 4, got %f", v)
	}
}

func TestNewFrameDuplicateColumn(t *testing.T) {
	_, err := NewFrame([]string{"a", "a"}, [][]float64{{1, 2}})
	if err == nil {
		t.Fatal("expected error for duplicate column name")
	}
}

func TestNewFrameRaggedRows(t *testing.T) {
	_, err := NewFrame([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
	if err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestDistinctWeeks(t *testing.T) {
	f, err := NewFrame([]string{DateColumn, "x"}, [][]float64{
		{3, 0}, {1, 0}, {2, 0}, {1, 0}, {3, 0},
	})
	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}

	weeks, err := f.DistinctWeeks()
	if err != nil {
		t.Fatalf("DistinctWeeks failed: %v", err)
	}

	expected := []int{1, 2, 3}
	if len(weeks) != len(expected) {
		t.Fatalf("expected %d weeks, got %d", len(expected), len(weeks))
	}
	for i, w := range expected {
		if weeks[i] != w {
			t.Errorf("week %d: expected %d, got %d", i, w, weeks[i])
		}
	}
}

func TestFilterWeeks(t *testing.T) {
	f, _ := NewFrame([]string{DateColumn, "x"}, [][]float64{
		{1, 10}, {2, 20}, {3, 30},
	})

	kept, err := f.FilterWeeks(func(w int) bool { return w != 1 })
	if err != nil {
		t.Fatalf("FilterWeeks failed: %v", err)
	}
	if kept.NumRows() != 2 {
		t.Errorf("expected 2 rows after filter, got %d", kept.NumRows())
	}
	if f.NumRows() != 3 {
		t.Errorf("FilterWeeks mutated original frame: %d rows", f.NumRows())
	}

	weeks, _ := kept.DistinctWeeks()
	for _, w := range weeks {
		if w == 1 {
			t.Error("filtered week still present")
		}
	}
}

func TestValuesReturnsCopies(t *testing.T) {
	f, _ := NewFrame([]string{"a", "b"}, [][]float64{{1, 2}})

	vals, err := f.Values([]string{"a"})
	if err != nil {
		t.Fatalf("Values failed: %v", err)
	}
	vals[0][0] = 99

	v, _ := f.Value(0, "a")
	if v != 1 {
		t.Errorf("mutating Values result changed frame: got %f", v)
	}
}

func TestSetUnknownColumn(t *testing.T) {
	f, _ := NewFrame([]string{"a"}, [][]float64{{1}})
	if err := f.Set(0, "missing", 5); err == nil {
		t.Fatal("expected error setting unknown column")
	}
}

func TestSelect(t *testing.T) {
	f, _ := NewFrame([]string{"a", "b", "c"}, [][]float64{{1, 2, 3}})

	sub, err := f.Select([]string{"c", "a"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	cols := sub.Columns()
	if len(cols) != 2 || cols[0] != "c" || cols[1] != "a" {
		t.Errorf("unexpected columns: %v", cols)
	}
	if v, _ := sub.Value(0, "c"); v != 3 {
		t.Errorf("expected 3, got %f", v)
	}

	if _, err := f.Select([]string{"missing"}); err == nil {
		t.Error("expected error selecting unknown column")
	}
}

func TestMatrixDrop(t *testing.T) {
	f, _ := NewFrame([]string{"a", "b", "c"}, [][]float64{{1, 2, 3}, {4, 5, 6}})

	m, err := f.Matrix([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Matrix failed: %v", err)
	}

	dropped := m.Drop("b", "missing")
	if len(dropped.Cols) != 2 {
		t.Fatalf("expected 2 columns after drop, got %d", len(dropped.Cols))
	}
	if dropped.HasColumn("b") {
		t.Error("dropped column still present")
	}
	if got := dropped.Data.At(1, 1); math.Abs(got-6) > 1e-12 {
		t.Errorf("expected 6 at (1,1), got %f", got)
	}
	if !m.HasColumn("b") {
		t.Error("Drop mutated source matrix")
	}
}
