package forecast

import (
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/evaluation"
	"github.com/christi-liongson/capp30254-final-project/internal/features"
)

// PredictEntity fits the winning configuration on the training partition and
// returns the test-partition predictions for a single state, identified by
// its indicator column (for example "state_north_carolina").
func PredictEntity(train, test *data.Frame, featType, stateCol string,
	winner evaluation.WinningConfig) ([]float64, error) {

	if !test.HasColumn(stateCol) {
		return nil, fmt.Errorf("unknown state column: %s", stateCol)
	}

	ed, err := features.PrepareEvalData(train, test, featType, true)
	if err != nil {
		return nil, err
	}

	preds, err := evaluation.FitAndPredict(ed.XTrain, ed.YTrain, ed.XTest, winner.Params)
	if err != nil {
		return nil, err
	}

	var out []float64
	for i := 0; i < test.NumRows(); i++ {
		indicator, err := test.Value(i, stateCol)
		if err != nil {
			return nil, err
		}
		if indicator == 1 {
			out = append(out, preds[i])
		}
	}

	return out, nil
}
