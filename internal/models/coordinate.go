package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// coordinateDescent minimizes
//
//	1/(2n) ||y - Xw||² + l1 ||w||₁ + l2/2 ||w||²
//
// by cyclic coordinate updates with soft thresholding. Shared by Lasso
// (l2 = 0) and ElasticNet. Columns with zero variance keep a zero weight.
func coordinateDescent(X *mat.Dense, y []float64, l1, l2 float64, maxIter int, tol float64) ([]float64, error) {
	r, c := X.Dims()
	n := float64(r)

	cols := make([][]float64, c)
	colSq := make([]float64, c)
	for j := 0; j < c; j++ {
		col := make([]float64, r)
		mat.Col(col, j, X)
		cols[j] = col
		colSq[j] = floats.Dot(col, col) / n
	}

	coef := make([]float64, c)
	residual := append([]float64(nil), y...)

	for iter := 0; iter < maxIter; iter++ {
		maxChange := 0.0

		for j := 0; j < c; j++ {
			if colSq[j] == 0 {
				continue
			}

			old := coef[j]
			// Partial residual with coordinate j added back.
			rho := floats.Dot(cols[j], residual)/n + colSq[j]*old

			updated := softThreshold(rho, l1) / (colSq[j] + l2)
			if updated != old {
				delta := updated - old
				for i := 0; i < r; i++ {
					residual[i] -= delta * cols[j][i]
				}
				coef[j] = updated
			}

			if change := math.Abs(updated - old); change > maxChange {
				maxChange = change
			}
		}

		if maxChange < tol {
			break
		}
	}

	for j, w := range coef {
		if !isFinite(w) {
			return nil, fmt.Errorf("coordinate descent diverged at coefficient %d", j)
		}
	}

	return coef, nil
}

func softThreshold(v, threshold float64) float64 {
	switch {
	case v > threshold:
		return v - threshold
	case v < -threshold:
		return v + threshold
	default:
		return 0
	}
}
