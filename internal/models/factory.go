package models

import (
	"fmt"
)

// New returns a freshly constructed, configured model instance. Every grid
// cell gets its own instance so configuration never leaks between cells, and
// instances can be fitted concurrently.
func New(p Hyperparams) (Model, error) {
	switch params := p.(type) {
	case LinearParams:
		return NewLinearRegression(params), nil
	case LassoParams:
		return NewLasso(params), nil
	case RidgeParams:
		return NewRidge(params), nil
	case ElasticNetParams:
		return NewElasticNet(params), nil
	default:
		return nil, fmt.Errorf("unknown hyperparameter type %T", p)
	}
}

// Grid maps each family to the hyperparameter combinations to evaluate.
type Grid map[Family][]Hyperparams

func (g Grid) Params(f Family) []Hyperparams {
	return g[f]
}

var gridAlphas = []float64{0.001, 0.01, 0.1, 1, 10, 100, 1000, 10000}

// DefaultGrid reproduces the canonical search space: plain least squares plus
// eight regularization strengths for each penalized family.
func DefaultGrid() Grid {
	grid := Grid{
		LinearRegression: {LinearParams{FitIntercept: true}},
	}
	for _, alpha := range gridAlphas {
		grid[Lasso] = append(grid[Lasso], NewLassoParams(alpha))
		grid[Ridge] = append(grid[Ridge], RidgeParams{Alpha: alpha})
		grid[ElasticNet] = append(grid[ElasticNet], NewElasticNetParams(alpha, 0.5))
	}
	return grid
}
