// Package forecast applies a chosen winning configuration: projecting the
// next week under hypothetical feature changes, and ranking the model's
// expanded feature coefficients.
package forecast

import (
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/evaluation"
	"github.com/christi-liongson/capp30254-final-project/internal/features"
)

// Simulation holds the projected week and one predicted target value per
// observation (state) in the latest week.
type Simulation struct {
	Week   int
	Values []float64
}

// Simulate projects the week after the latest observed one. The latest week's
// rows become the synthetic test rows: their lag feature takes the current
// total, the target assumes the additive forecast (current total plus new
// cases), and overrides rewrite any column last, including the ones just
// computed. The winning model is then refitted on the remaining history.
func Simulate(dataset *data.Frame, overrides map[string]float64, featType string,
	winner evaluation.WinningConfig) (*Simulation, error) {

	trimmed, test, week, err := buildSimulationFrame(dataset, overrides)
	if err != nil {
		return nil, err
	}

	ed, err := features.PrepareEvalData(trimmed, test, featType, true)
	if err != nil {
		return nil, err
	}

	preds, err := evaluation.FitAndPredict(ed.XTrain, ed.YTrain, ed.XTest, winner.Params)
	if err != nil {
		return nil, err
	}

	return &Simulation{Week: week, Values: preds}, nil
}

// buildSimulationFrame drops the earliest week (undefined lag features),
// copies the latest remaining week as next week's synthetic rows, applies the
// additive forecast assumption, then the overrides.
func buildSimulationFrame(dataset *data.Frame, overrides map[string]float64) (*data.Frame, *data.Frame, int, error) {
	weeks, err := dataset.DistinctWeeks()
	if err != nil {
		return nil, nil, 0, err
	}
	if len(weeks) < 2 {
		return nil, nil, 0, fmt.Errorf("%w: got %d", evaluation.ErrTooFewWeeks, len(weeks))
	}

	earliest := weeks[0]
	trimmed, err := dataset.FilterWeeks(func(w int) bool { return w != earliest })
	if err != nil {
		return nil, nil, 0, err
	}

	latest := weeks[len(weeks)-1]
	test, err := trimmed.FilterWeeks(func(w int) bool { return w == latest })
	if err != nil {
		return nil, nil, 0, err
	}

	for i := 0; i < test.NumRows(); i++ {
		total, err := test.Value(i, features.Target)
		if err != nil {
			return nil, nil, 0, err
		}
		newCases, err := test.Value(i, features.NewCases)
		if err != nil {
			return nil, nil, 0, err
		}

		if err := test.Set(i, data.DateColumn, float64(latest+1)); err != nil {
			return nil, nil, 0, err
		}
		if err := test.Set(i, features.LagCases, total); err != nil {
			return nil, nil, 0, err
		}
		if err := test.Set(i, features.Target, total+newCases); err != nil {
			return nil, nil, 0, err
		}

		for col, val := range overrides {
			if err := test.Set(i, col, val); err != nil {
				return nil, nil, 0, err
			}
		}
	}

	return trimmed, test, latest + 1, nil
}
