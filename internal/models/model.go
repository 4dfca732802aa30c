// Package models implements the linear-coefficient regression families used
// by the temporal cross-validation engine.
package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

type Family string

const (
	LinearRegression Family = "LinearRegression"
	Lasso            Family = "Lasso"
	Ridge            Family = "Ridge"
	ElasticNet       Family = "ElasticNet"
)

// Families returns every model family in canonical iteration order. Grid
// search and tie-breaking depend on this order being fixed.
func Families() []Family {
	return []Family{LinearRegression, Lasso, Ridge, ElasticNet}
}

var (
	ErrNotFitted      = errors.New("model must be fitted first")
	ErrNoCoefficients = errors.New("model family exposes no coefficient vector")
)

type Model interface {
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) ([]float64, error)
	// Coefficients returns one weight per input column of the fitted design
	// matrix. Families without a linear coefficient vector return
	// ErrNoCoefficients.
	Coefficients() ([]float64, error)
	Family() Family
	Params() Hyperparams
}

// Hyperparams is the strongly-typed per-family parameter set. Key renders the
// parameters canonically so a (family, degree, key) triple uniquely labels a
// grid cell.
type Hyperparams interface {
	Family() Family
	Key() string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func checkTrainingData(X *mat.Dense, y []float64) error {
	r, c := X.Dims()
	if r != len(y) {
		return fmt.Errorf("X has %d rows but y has %d values", r, len(y))
	}
	if r == 0 || c == 0 {
		return fmt.Errorf("empty training data")
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !isFinite(X.At(i, j)) {
				return fmt.Errorf("non-finite value in X at (%d, %d)", i, j)
			}
		}
	}
	for i, v := range y {
		if !isFinite(v) {
			return fmt.Errorf("non-finite target value at row %d", i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func predictLinear(X *mat.Dense, coef []float64, intercept float64) ([]float64, error) {
	r, c := X.Dims()
	if c != len(coef) {
		return nil, fmt.Errorf("X has %d columns but model was fitted with %d", c, len(coef))
	}

	preds := make([]float64, r)
	for i := 0; i < r; i++ {
		sum := intercept
		for j := 0; j < c; j++ {
			sum += X.At(i, j) * coef[j]
		}
		preds[i] = sum
	}
	return preds, nil
}
