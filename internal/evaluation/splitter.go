package evaluation

import (
	"errors"
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
)

var (
	ErrTooFewWeeks    = errors.New("dataset must span at least 2 distinct weeks")
	ErrEmptyTrainFold = errors.New("fold training partition is empty")
	ErrMissingWeek    = errors.New("no observations for an interior week")
)

// Fold is one expanding-window split: everything up to TestWeek-1 (minus the
// globally earliest week, whose lag features are undefined) predicts
// TestWeek. Folds are immutable once built.
type Fold struct {
	TestWeek int
	Train    *data.Frame
	Test     *data.Frame
}

type TemporalSplitter struct{}

func NewTemporalSplitter() *TemporalSplitter {
	return &TemporalSplitter{}
}

// GlobalSplit holds out the single latest week as the test partition and
// keeps every earlier week for training.
func (ts *TemporalSplitter) GlobalSplit(dataset *data.Frame) (*data.Frame, *data.Frame, error) {
	weeks, err := dataset.DistinctWeeks()
	if err != nil {
		return nil, nil, err
	}
	if len(weeks) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewWeeks, len(weeks))
	}

	latest := weeks[len(weeks)-1]
	train, err := dataset.FilterWeeks(func(w int) bool { return w < latest })
	if err != nil {
		return nil, nil, err
	}
	test, err := dataset.FilterWeeks(func(w int) bool { return w == latest })
	if err != nil {
		return nil, nil, err
	}

	return train, test, nil
}

// Folds builds the expanding-window fold sequence in increasing week order.
// For each week w strictly between the earliest and latest training weeks,
// the fold tests on w+1 and trains on every week up to w except the earliest.
// The last fold therefore carries the most training history.
func (ts *TemporalSplitter) Folds(train *data.Frame) ([]Fold, error) {
	weeks, err := train.DistinctWeeks()
	if err != nil {
		return nil, err
	}
	if len(weeks) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewWeeks, len(weeks))
	}

	present := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		present[w] = true
	}

	earliest := weeks[0]
	latest := weeks[len(weeks)-1]

	var folds []Fold
	for w := earliest + 1; w < latest; w++ {
		if !present[w] || !present[w+1] {
			return nil, fmt.Errorf("%w: week %d", ErrMissingWeek, w+1)
		}

		week := w
		foldTrain, err := train.FilterWeeks(func(fw int) bool {
			return fw <= week && fw != earliest
		})
		if err != nil {
			return nil, err
		}
		if foldTrain.NumRows() == 0 {
			return nil, fmt.Errorf("%w: test week %d", ErrEmptyTrainFold, w+1)
		}

		foldTest, err := train.FilterWeeks(func(fw int) bool { return fw == week+1 })
		if err != nil {
			return nil, err
		}

		folds = append(folds, Fold{TestWeek: w + 1, Train: foldTrain, Test: foldTest})
	}

	return folds, nil
}
