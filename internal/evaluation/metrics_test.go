package evaluation

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 3, 2, 4}

	m, err := Evaluate(yTrue, yPred)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	// Residuals: 0, 1, -1, 0.
	if math.Abs(m.RSS-2) > 1e-12 {
		t.Errorf("expected RSS 2, got %f", m.RSS)
	}
	if math.Abs(m.MSE-0.5) > 1e-12 {
		t.Errorf("expected MSE 0.5, got %f", m.MSE)
	}
	if math.Abs(m.MAE-0.5) > 1e-12 {
		t.Errorf("expected MAE 0.5, got %f", m.MAE)
	}
}

func TestEvaluatePerfectPredictions(t *testing.T) {
	y := []float64{5, 10, 15}

	m, err := Evaluate(y, y)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if m.MSE != 0 || m.MAE != 0 || m.RSS != 0 {
		t.Errorf("expected all-zero metrics, got %+v", m)
	}
}

func TestEvaluateRSSIsUnnormalized(t *testing.T) {
	yTrue := []float64{0, 0, 0, 0, 0}
	yPred := []float64{1, 1, 1, 1, 1}

	m, err := Evaluate(yTrue, yPred)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if math.Abs(m.RSS-m.MSE*5) > 1e-12 {
		t.Errorf("RSS %f is not MSE %f times n", m.RSS, m.MSE)
	}
}

func TestEvaluateLengthMismatch(t *testing.T) {
	if _, err := Evaluate([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestEvaluateEmpty(t *testing.T) {
	if _, err := Evaluate(nil, nil); err == nil {
		t.Fatal("expected error for empty inputs")
	}
}
