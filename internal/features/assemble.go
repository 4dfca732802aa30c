package features

import (
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/preprocessing"
)

// EvalData is a ready-to-fit train/test split for one feature set.
type EvalData struct {
	XTrain *data.Matrix
	YTrain []float64
	XTest  *data.Matrix
	YTest  []float64
}

// PrepareEvalData normalizes the population block (min-max, fitted on train
// only), drops the earliest training week (its lag features are undefined),
// selects the feature set's columns plus every state indicator, and splits
// off the target. With includeDate the week column rides along as metadata;
// the trainer strips it before fitting.
func PrepareEvalData(train, test *data.Frame, featType string, includeDate bool) (*EvalData, error) {
	setCols, err := Columns(featType)
	if err != nil {
		return nil, err
	}

	normCols, _ := Columns("population")

	train, test, err = normalizeBlock(train, test, normCols)
	if err != nil {
		return nil, err
	}

	weeks, err := train.DistinctWeeks()
	if err != nil {
		return nil, err
	}
	if len(weeks) < 2 {
		return nil, fmt.Errorf("training data must span at least 2 weeks, got %d", len(weeks))
	}
	earliest := weeks[0]
	train, err = train.FilterWeeks(func(w int) bool { return w != earliest })
	if err != nil {
		return nil, err
	}

	featureCols := append(setCols, StateColumns(train)...)
	if includeDate {
		featureCols = append(featureCols, data.DateColumn)
	}

	xTrain, err := train.Matrix(featureCols)
	if err != nil {
		return nil, err
	}
	xTest, err := test.Matrix(featureCols)
	if err != nil {
		return nil, err
	}
	yTrain, err := train.Column(Target)
	if err != nil {
		return nil, err
	}
	yTest, err := test.Column(Target)
	if err != nil {
		return nil, err
	}

	return &EvalData{XTrain: xTrain, YTrain: yTrain, XTest: xTest, YTest: yTest}, nil
}

// NormalizeBlock min-max scales the population columns of both partitions,
// with the scaler fitted on train only. The inputs are not modified.
func NormalizeBlock(train, test *data.Frame) (*data.Frame, *data.Frame, error) {
	normCols, _ := Columns("population")
	return normalizeBlock(train, test, normCols)
}

func normalizeBlock(train, test *data.Frame, cols []string) (*data.Frame, *data.Frame, error) {
	trainVals, err := train.Values(cols)
	if err != nil {
		return nil, nil, err
	}
	testVals, err := test.Values(cols)
	if err != nil {
		return nil, nil, err
	}

	scaler := preprocessing.NewScaler("minmax")
	trainNorm, err := scaler.FitTransform(trainVals)
	if err != nil {
		return nil, nil, err
	}
	testNorm, err := scaler.Transform(testVals)
	if err != nil {
		return nil, nil, err
	}

	train = train.Copy()
	test = test.Copy()
	if err := train.SetValues(cols, trainNorm); err != nil {
		return nil, nil, err
	}
	if err := test.SetValues(cols, testNorm); err != nil {
		return nil, nil, err
	}

	return train, test, nil
}
