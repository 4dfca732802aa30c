package models

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRidgeNearOLSAtTinyAlpha(t *testing.T) {
	// y = 3x with an explicit bias column.
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	})
	y := []float64{3, 6, 9, 12}

	m := NewRidge(RidgeParams{Alpha: 1e-8})
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	preds, err := m.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	for i, p := range preds {
		if math.Abs(p-y[i]) > 1e-4 {
			t.Errorf("row %d: expected %f, got %f", i, y[i], p)
		}
	}
}

func TestRidgeShrinkage(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 2, 3, 4, 5})
	y := []float64{3, 6, 9, 12, 15}

	var prev float64 = math.Inf(1)
	for _, alpha := range []float64{0.001, 1, 1000} {
		m := NewRidge(RidgeParams{Alpha: alpha})
		if err := m.Fit(X, y); err != nil {
			t.Fatalf("Fit failed at alpha=%g: %v", alpha, err)
		}
		coef, _ := m.Coefficients()
		if math.Abs(coef[0]) >= prev {
			t.Errorf("alpha=%g: coefficient %f did not shrink below %f", alpha, coef[0], prev)
		}
		prev = math.Abs(coef[0])
	}
}

func TestRidgeNegativeAlpha(t *testing.T) {
	m := NewRidge(RidgeParams{Alpha: -1})
	X := mat.NewDense(2, 1, []float64{1, 2})
	if err := m.Fit(X, []float64{1, 2}); err == nil {
		t.Fatal("expected error for negative alpha")
	}
}

func TestRidgeHandlesCollinearColumns(t *testing.T) {
	// The penalty regularizes the normal equations, so duplicated columns
	// still solve.
	X := mat.NewDense(3, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
	})
	y := []float64{2, 4, 6}

	m := NewRidge(RidgeParams{Alpha: 0.1})
	if err := m.Fit(X, y); err != nil {
		t.Fatalf("collinear fit failed: %v", err)
	}

	// Symmetric problem, symmetric solution.
	coef, _ := m.Coefficients()
	if math.Abs(coef[0]-coef[1]) > 1e-8 {
		t.Errorf("expected symmetric coefficients, got %v", coef)
	}
}
