package evaluation

import (
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

// FitAndPredict builds a fresh model for the given hyperparameters, fits it
// on the training split, and predicts the test split. The week column is
// metadata, never a predictor, so it is stripped from both matrices first.
// Fit errors propagate unchanged: a failed fit means a configuration bug, and
// substituting values would corrupt the later averaging.
func FitAndPredict(xTrain *data.Matrix, yTrain []float64, xTest *data.Matrix, p models.Hyperparams) ([]float64, error) {
	xTrain = xTrain.Drop(data.DateColumn)
	xTest = xTest.Drop(data.DateColumn)

	model, err := models.New(p)
	if err != nil {
		return nil, err
	}

	if err := model.Fit(xTrain.Data, yTrain); err != nil {
		return nil, fmt.Errorf("fit %s: %w", model.Family(), err)
	}

	preds, err := model.Predict(xTest.Data)
	if err != nil {
		return nil, fmt.Errorf("predict %s: %w", model.Family(), err)
	}
	return preds, nil
}
