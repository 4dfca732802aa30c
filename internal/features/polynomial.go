package features

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
)

// PolynomialExpander maps a feature matrix to a bias column plus per-feature
// power terms: [1, x1^1..xk^1, ..., x1^d..xk^d]. No interaction terms are
// produced, so the expanded column count is 1 + degree*k and every output
// column has a "{feature}^{power}" label.
type PolynomialExpander struct {
	Degree int
}

func NewPolynomialExpander(degree int) (*PolynomialExpander, error) {
	if degree < 1 {
		return nil, fmt.Errorf("polynomial degree must be at least 1, got %d", degree)
	}
	return &PolynomialExpander{Degree: degree}, nil
}

// Labels returns the expanded column labels for the given input columns,
// starting with the bias term "1".
func (p *PolynomialExpander) Labels(cols []string) []string {
	labels := []string{"1"}
	for deg := 1; deg <= p.Degree; deg++ {
		for _, col := range cols {
			labels = append(labels, fmt.Sprintf("%s^%d", col, deg))
		}
	}
	return labels
}

// FitTransform expands the matrix at the configured degree. The mapping has
// no fitted state, so applying it to a test matrix uses exactly the transform
// derived from training.
func (p *PolynomialExpander) FitTransform(m *data.Matrix) *data.Matrix {
	return p.Transform(m)
}

func (p *PolynomialExpander) Transform(m *data.Matrix) *data.Matrix {
	r, c := m.Data.Dims()
	out := mat.NewDense(r, 1+p.Degree*c, nil)

	for i := 0; i < r; i++ {
		out.Set(i, 0, 1)
		for deg := 1; deg <= p.Degree; deg++ {
			for j := 0; j < c; j++ {
				out.Set(i, 1+(deg-1)*c+j, math.Pow(m.Data.At(i, j), float64(deg)))
			}
		}
	}

	return &data.Matrix{Cols: p.Labels(m.Cols), Data: out}
}
