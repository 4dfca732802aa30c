// Package evaluation implements the temporal cross-validation engine: the
// week-by-week splitter, the grid search over model families, and the
// aggregation that picks a winning configuration per feature set.
package evaluation

import (
	"fmt"
	"math"
)

// Metrics are the three error measures every grid cell is scored on. RSS is
// the unnormalized residual sum of squares: MSE times the sample count.
type Metrics struct {
	MSE float64
	MAE float64
	RSS float64
}

func Evaluate(yTrue, yPred []float64) (Metrics, error) {
	if len(yTrue) != len(yPred) {
		return Metrics{}, fmt.Errorf("length mismatch: %d true values, %d predictions", len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return Metrics{}, fmt.Errorf("cannot evaluate empty predictions")
	}

	var rss, absSum float64
	for i := range yTrue {
		residual := yPred[i] - yTrue[i]
		rss += residual * residual
		absSum += math.Abs(residual)
	}

	n := float64(len(yTrue))
	return Metrics{
		MSE: rss / n,
		MAE: absSum / n,
		RSS: rss,
	}, nil
}
