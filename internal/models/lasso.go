package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type LassoParams struct {
	Alpha   float64
	MaxIter int
	Tol     float64
}

// NewLassoParams fills in the solver defaults for a given penalty strength.
func NewLassoParams(alpha float64) LassoParams {
	return LassoParams{Alpha: alpha, MaxIter: 1000, Tol: 1e-4}
}

func (p LassoParams) Family() Family { return Lasso }

func (p LassoParams) Key() string {
	return fmt.Sprintf("alpha=%s max_iter=%d tol=%s",
		formatFloat(p.Alpha), p.MaxIter, formatFloat(p.Tol))
}

type lassoModel struct {
	params LassoParams
	coef   []float64
	fitted bool
}

func NewLasso(p LassoParams) Model {
	if p.MaxIter <= 0 {
		p.MaxIter = 1000
	}
	if p.Tol <= 0 {
		p.Tol = 1e-4
	}
	return &lassoModel{params: p}
}

func (m *lassoModel) Family() Family      { return Lasso }
func (m *lassoModel) Params() Hyperparams { return m.params }

func (m *lassoModel) Fit(X *mat.Dense, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if m.params.Alpha < 0 {
		return fmt.Errorf("lasso alpha must be non-negative, got %g", m.params.Alpha)
	}

	coef, err := coordinateDescent(X, y, m.params.Alpha, 0, m.params.MaxIter, m.params.Tol)
	if err != nil {
		return fmt.Errorf("lasso fit (alpha=%g): %w", m.params.Alpha, err)
	}

	m.coef = coef
	m.fitted = true
	return nil
}

func (m *lassoModel) Predict(X *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return predictLinear(X, m.coef, 0)
}

func (m *lassoModel) Coefficients() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.coef...), nil
}
