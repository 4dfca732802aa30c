package data

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateFrame checks the structural guarantees the evaluation pipeline
// relies on: a week column, finite values everywhere, and ascending week
// order.
func (v *Validator) ValidateFrame(f *Frame, required []string) error {
	if f.NumRows() == 0 {
		return fmt.Errorf("dataset is empty")
	}

	if !f.HasColumn(DateColumn) {
		return fmt.Errorf("dataset is missing the %s column", DateColumn)
	}

	for _, col := range required {
		if !f.HasColumn(col) {
			return fmt.Errorf("dataset is missing required column: %s", col)
		}
	}

	for _, col := range f.Columns() {
		vals, err := f.Column(col)
		if err != nil {
			return err
		}
		for i, val := range vals {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return fmt.Errorf("non-finite value at row %d, column %s", i, col)
			}
		}
	}

	weeks, err := f.Weeks()
	if err != nil {
		return err
	}
	for i := 1; i < len(weeks); i++ {
		if weeks[i] < weeks[i-1] {
			return fmt.Errorf("rows are not sorted by %s: row %d has week %d after week %d",
				DateColumn, i, weeks[i], weeks[i-1])
		}
	}

	return nil
}

func (v *Validator) ValidateSplit(train, test *Frame) error {
	if train.NumRows() == 0 {
		return fmt.Errorf("training partition is empty")
	}
	if test.NumRows() == 0 {
		return fmt.Errorf("test partition is empty")
	}

	trainCols := train.Columns()
	testCols := test.Columns()
	if len(trainCols) != len(testCols) {
		return fmt.Errorf("train and test have different column counts: %d vs %d",
			len(trainCols), len(testCols))
	}
	for i := range trainCols {
		if trainCols[i] != testCols[i] {
			return fmt.Errorf("column mismatch at position %d: %s vs %s", i, trainCols[i], testCols[i])
		}
	}

	return nil
}

// Stats summarizes each column, mirroring what the experiment runner logs at
// startup.
func (v *Validator) Stats(f *Frame) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)

	for _, col := range f.Columns() {
		vals, err := f.Column(col)
		if err != nil || len(vals) == 0 {
			continue
		}

		min, max := vals[0], vals[0]
		for _, val := range vals[1:] {
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}

		out[col] = map[string]float64{
			"min":  min,
			"max":  max,
			"mean": stat.Mean(vals, nil),
		}
	}

	return out
}
