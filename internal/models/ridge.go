package models

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type RidgeParams struct {
	Alpha float64
}

func (p RidgeParams) Family() Family { return Ridge }

func (p RidgeParams) Key() string {
	return "alpha=" + formatFloat(p.Alpha)
}

// ridgeModel solves the L2-penalized normal equations (XᵀX + αI)w = Xᵀy.
// Every column is penalized, including the polynomial bias column.
type ridgeModel struct {
	params RidgeParams
	coef   []float64
	fitted bool
}

func NewRidge(p RidgeParams) Model {
	return &ridgeModel{params: p}
}

func (m *ridgeModel) Family() Family      { return Ridge }
func (m *ridgeModel) Params() Hyperparams { return m.params }

func (m *ridgeModel) Fit(X *mat.Dense, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}
	if m.params.Alpha < 0 {
		return fmt.Errorf("ridge alpha must be non-negative, got %g", m.params.Alpha)
	}

	_, c := X.Dims()

	var xtx mat.Dense
	xtx.Mul(X.T(), X)
	for j := 0; j < c; j++ {
		xtx.Set(j, j, xtx.At(j, j)+m.params.Alpha)
	}

	yVec := mat.NewVecDense(len(y), append([]float64(nil), y...))
	var xty mat.VecDense
	xty.MulVec(X.T(), yVec)

	var sol mat.VecDense
	if err := sol.SolveVec(&xtx, &xty); err != nil {
		return fmt.Errorf("ridge solve (alpha=%g): %w", m.params.Alpha, err)
	}

	m.coef = make([]float64, c)
	for j := 0; j < c; j++ {
		m.coef[j] = sol.AtVec(j)
	}
	m.fitted = true
	return nil
}

func (m *ridgeModel) Predict(X *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return predictLinear(X, m.coef, 0)
}

func (m *ridgeModel) Coefficients() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.coef...), nil
}
