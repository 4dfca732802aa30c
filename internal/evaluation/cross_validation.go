package evaluation

import (
	"errors"
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/features"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

// CrossValidate runs the grid search across every fold and every polynomial
// degree for one set of feature columns, concatenating the per-fold records
// into a single evaluation table. Per fold, the population block is min-max
// normalized with scaling parameters fitted on the fold's training rows only,
// and the polynomial expansion fitted on train is reused for the test rows.
// Iteration order over folds, degrees, and grid entries is fixed, so repeated
// runs produce identical tables (modulo run time).
func CrossValidate(folds []Fold, featureCols []string, target string,
	degrees []int, grid models.Grid, workers int) ([]Record, error) {

	var table []Record

	for _, fold := range folds {
		train, test, err := features.NormalizeBlock(fold.Train, fold.Test)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", fold.TestWeek, err)
		}

		yTrain, err := train.Column(target)
		if err != nil {
			return nil, err
		}
		yTest, err := test.Column(target)
		if err != nil {
			return nil, err
		}

		baseTrain, err := train.Matrix(featureCols)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", fold.TestWeek, err)
		}
		baseTest, err := test.Matrix(featureCols)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", fold.TestWeek, err)
		}

		for _, degree := range degrees {
			expander, err := features.NewPolynomialExpander(degree)
			if err != nil {
				return nil, err
			}

			xTrain := expander.FitTransform(baseTrain)
			xTest := expander.Transform(baseTest)

			records, err := RunGridSearch(xTrain, yTrain, xTest, yTest,
				fold.TestWeek, degree, grid, workers)
			if err != nil {
				return nil, err
			}
			table = append(table, records...)
		}
	}

	return table, nil
}

// RunTemporalCV drives the cross-validation for every feature set and reduces
// each evaluation table to a single winning configuration. Feature sets are
// isolated: a failure aborts that set but the others still run, and the
// partial winners are returned alongside the joined error.
func RunTemporalCV(folds []Fold, featureSets []string, target string,
	degrees []int, grid models.Grid, workers int) (map[string]WinningConfig, map[string][]Record, error) {

	if len(folds) == 0 {
		return nil, nil, fmt.Errorf("no folds to cross-validate")
	}

	stateCols := features.StateColumns(folds[0].Train)

	winners := make(map[string]WinningConfig, len(featureSets))
	tables := make(map[string][]Record, len(featureSets))
	var errs []error

	for _, featType := range featureSets {
		setCols, err := features.Columns(featType)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		table, err := CrossValidate(folds, append(setCols, stateCols...), target,
			degrees, grid, workers)
		if err != nil {
			errs = append(errs, fmt.Errorf("feature set %s: %w", featType, err))
			continue
		}

		winner, err := SelectWinner(table)
		if err != nil {
			errs = append(errs, fmt.Errorf("feature set %s: %w", featType, err))
			continue
		}

		winners[featType] = winner
		tables[featType] = table
	}

	return winners, tables, errors.Join(errs...)
}
