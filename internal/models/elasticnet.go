package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type ElasticNetParams struct {
	Alpha   float64
	L1Ratio float64
	MaxIter int
	Tol     float64
}

// NewElasticNetParams fills in the solver defaults for a given penalty
// strength and L1/L2 mix.
func NewElasticNetParams(alpha, l1Ratio float64) ElasticNetParams {
	return ElasticNetParams{Alpha: alpha, L1Ratio: l1Ratio, MaxIter: 1000, Tol: 1e-4}
}

func (p ElasticNetParams) Family() Family { return ElasticNet }

func (p ElasticNetParams) Key() string {
	return fmt.Sprintf("alpha=%s l1_ratio=%s max_iter=%d tol=%s",
		formatFloat(p.Alpha), formatFloat(p.L1Ratio), p.MaxIter, formatFloat(p.Tol))
}

type elasticNetModel struct {
	params ElasticNetParams
	coef   []float64
	fitted bool
}

func NewElasticNet(p ElasticNetParams) Model {
	if p.MaxIter <= 0 {
		p.MaxIter = 1000
	}
	if p.Tol <= 0 {
		p.Tol = 1e-4
	}
	return &elasticNetModel{params: p}
}

func (m *elasticNetModel) Family() Family      { return ElasticNet }
func (m *elasticNetModel) Params() Hyperparams { return m.params }

func (m *elasticNetModel) Fit(X *mat.Dense, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if m.params.Alpha < 0 {
		return fmt.Errorf("elastic net alpha must be non-negative, got %g", m.params.Alpha)
	}
	if m.params.L1Ratio < 0 || m.params.L1Ratio > 1 {
		return fmt.Errorf("elastic net l1_ratio must be in [0, 1], got %g", m.params.L1Ratio)
	}

	l1 := m.params.Alpha * m.params.L1Ratio
	l2 := m.params.Alpha * (1 - m.params.L1Ratio)

	coef, err := coordinateDescent(X, y, l1, l2, m.params.MaxIter, m.params.Tol)
	if err != nil {
		return fmt.Errorf("elastic net fit (alpha=%g): %w", m.params.Alpha, err)
	}

	m.coef = coef
	m.fitted = true
	return nil
}

func (m *elasticNetModel) Predict(X *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return predictLinear(X, m.coef, 0)
}

func (m *elasticNetModel) Coefficients() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.coef...), nil
}
