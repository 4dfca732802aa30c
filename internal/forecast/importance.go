package forecast

import (
	"fmt"
	"math"
	"sort"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/evaluation"
	"github.com/christi-liongson/capp30254-final-project/internal/features"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

// Coefficients below this magnitude are noise and are not reported.
const importanceThreshold = 0.001

// Importance is one expanded feature and the absolute value of its fitted
// coefficient.
type Importance struct {
	Feature     string
	Coefficient float64
}

// CompareImportance refits each feature set's winning configuration on the
// fold with the most training history (the last fold) and ranks the expanded
// feature coefficients.
func CompareImportance(winners map[string]evaluation.WinningConfig,
	folds []evaluation.Fold) (map[string][]Importance, error) {

	if len(folds) == 0 {
		return nil, fmt.Errorf("no folds available for importance extraction")
	}

	train := folds[len(folds)-1].Train
	stateCols := features.StateColumns(folds[0].Train)

	out := make(map[string][]Importance, len(winners))

	names := make([]string, 0, len(winners))
	for featType := range winners {
		names = append(names, featType)
	}
	sort.Strings(names)

	for _, featType := range names {
		setCols, err := features.Columns(featType)
		if err != nil {
			return nil, err
		}

		ranked, err := FeatureImportance(winners[featType], append(setCols, stateCols...), train)
		if err != nil {
			return nil, fmt.Errorf("feature set %s: %w", featType, err)
		}
		out[featType] = ranked
	}

	return out, nil
}

// FeatureImportance expands the training frame at the winning degree, refits
// the winning model, and returns the "{feature}^{power}" coefficients (plus
// the bias term "1") sorted by descending magnitude, dropping those at or
// below the reporting threshold. Only families with a linear coefficient
// vector are supported.
func FeatureImportance(winner evaluation.WinningConfig, featureCols []string,
	train *data.Frame) ([]Importance, error) {

	expander, err := features.NewPolynomialExpander(winner.Degree)
	if err != nil {
		return nil, err
	}

	base, err := train.Matrix(featureCols)
	if err != nil {
		return nil, err
	}
	x := expander.FitTransform(base)

	y, err := train.Column(features.Target)
	if err != nil {
		return nil, err
	}

	model, err := models.New(winner.Params)
	if err != nil {
		return nil, err
	}
	if err := model.Fit(x.Data, y); err != nil {
		return nil, fmt.Errorf("fit %s: %w", model.Family(), err)
	}

	coefs, err := model.Coefficients()
	if err != nil {
		return nil, err
	}

	labels := expander.Labels(featureCols)
	if len(coefs) != len(labels) {
		return nil, fmt.Errorf("coefficient count %d does not match %d expanded features",
			len(coefs), len(labels))
	}

	ranked := make([]Importance, len(coefs))
	for i, c := range coefs {
		ranked[i] = Importance{Feature: labels[i], Coefficient: math.Abs(c)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Coefficient > ranked[j].Coefficient
	})

	var kept []Importance
	for _, imp := range ranked {
		if imp.Coefficient > importanceThreshold {
			kept = append(kept, imp)
		}
	}

	return kept, nil
}
