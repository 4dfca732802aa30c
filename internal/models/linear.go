package models

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type LinearParams struct {
	FitIntercept bool
}

func (p LinearParams) Family() Family { return LinearRegression }

func (p LinearParams) Key() string {
	return fmt.Sprintf("fit_intercept=%t", p.FitIntercept)
}

// linearModel is ordinary least squares, solved through an SVD pseudo-inverse.
// The design matrices here are routinely rank-deficient (the polynomial bias
// column duplicates the sum of the one-hot state columns), so a plain QR
// solve would fail.
type linearModel struct {
	params    LinearParams
	coef      []float64
	intercept float64
	fitted    bool
}

func NewLinearRegression(p LinearParams) Model {
	return &linearModel{params: p}
}

func (m *linearModel) Family() Family      { return LinearRegression }
func (m *linearModel) Params() Hyperparams { return m.params }

func (m *linearModel) Fit(X *mat.Dense, y []float64) error {
	if err := checkTrainingData(X, y); err != nil {
		return err
	}

	r, c := X.Dims()

	if !m.params.FitIntercept {
		coef, err := lstsq(X, y)
		if err != nil {
			return err
		}
		m.coef = coef
		m.intercept = 0
		m.fitted = true
		return nil
	}

	// Center X and y; the intercept is recovered from the column means. A
	// constant input column centers to zero and gets a zero coefficient.
	colMeans := make([]float64, c)
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		colMeans[j] = sum / float64(r)
	}
	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(r)

	centered := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			centered.Set(i, j, X.At(i, j)-colMeans[j])
		}
	}
	yCentered := make([]float64, r)
	for i, v := range y {
		yCentered[i] = v - yMean
	}

	coef, err := lstsq(centered, yCentered)
	if err != nil {
		return err
	}

	intercept := yMean
	for j, w := range coef {
		intercept -= w * colMeans[j]
	}

	m.coef = coef
	m.intercept = intercept
	m.fitted = true
	return nil
}

func (m *linearModel) Predict(X *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return predictLinear(X, m.coef, m.intercept)
}

func (m *linearModel) Coefficients() ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	return append([]float64(nil), m.coef...), nil
}

// lstsq solves min ||Xw - y|| through a thin SVD, zeroing singular values
// below a relative tolerance so collinear columns resolve to the minimum-norm
// solution instead of an error.
func lstsq(X *mat.Dense, y []float64) ([]float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return nil, errors.New("svd factorization failed")
	}

	r, c := X.Dims()
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	const rcond = 1e-12
	tol := 0.0
	if len(s) > 0 {
		tol = rcond * s[0] * float64(max(r, c))
	}

	coef := make([]float64, c)
	for k := range s {
		if s[k] <= tol {
			continue
		}
		var dot float64
		for i := 0; i < r; i++ {
			dot += u.At(i, k) * y[i]
		}
		scale := dot / s[k]
		for j := 0; j < c; j++ {
			coef[j] += scale * v.At(j, k)
		}
	}

	return coef, nil
}
