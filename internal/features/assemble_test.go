package features

import (
	"math"
	"testing"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
)

var evalCols = []string{
	data.DateColumn, "pop_2020", "pop_2018", "capacity", "pct_occup",
	LagCases, NewCases, Target, "state_a", "state_b",
}

// twoStateFrame builds one row per (week, state) with distinct population and
// case values per week.
func twoStateFrame(t *testing.T, weeks []int) *data.Frame {
	t.Helper()

	var rows [][]float64
	for _, w := range weeks {
		base := float64(w * 100)
		rows = append(rows,
			[]float64{float64(w), base, base - 10, base + 50, 0.5, base - 100, 10, base - 90, 1, 0},
			[]float64{float64(w), base + 5, base - 5, base + 55, 0.6, base - 95, 12, base - 83, 0, 1},
		)
	}

	f, err := data.NewFrame(evalCols, rows)
	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}
	return f
}

func TestPrepareEvalDataDropsEarliestTrainWeek(t *testing.T) {
	train := twoStateFrame(t, []int{1, 2, 3})
	test := twoStateFrame(t, []int{4})

	ed, err := PrepareEvalData(train, test, "naive", false)
	if err != nil {
		t.Fatalf("PrepareEvalData failed: %v", err)
	}

	// Weeks 2 and 3 survive, two states each.
	if got := ed.XTrain.NumRows(); got != 4 {
		t.Errorf("expected 4 training rows, got %d", got)
	}
	if len(ed.YTrain) != 4 {
		t.Errorf("expected 4 training targets, got %d", len(ed.YTrain))
	}
	if got := ed.XTest.NumRows(); got != 2 {
		t.Errorf("expected 2 test rows, got %d", got)
	}
}

func TestPrepareEvalDataColumns(t *testing.T) {
	train := twoStateFrame(t, []int{1, 2})
	test := twoStateFrame(t, []int{3})

	ed, err := PrepareEvalData(train, test, "naive", false)
	if err != nil {
		t.Fatalf("PrepareEvalData failed: %v", err)
	}

	// naive predictors plus the two state indicators.
	if len(ed.XTrain.Cols) != 4 {
		t.Errorf("expected 4 feature columns, got %v", ed.XTrain.Cols)
	}
	if ed.XTrain.HasColumn(data.DateColumn) {
		t.Error("week column present without includeDate")
	}

	withDate, err := PrepareEvalData(train, test, "naive", true)
	if err != nil {
		t.Fatalf("PrepareEvalData failed: %v", err)
	}
	if !withDate.XTrain.HasColumn(data.DateColumn) {
		t.Error("week column missing with includeDate")
	}
}

func TestPrepareEvalDataUnknownSet(t *testing.T) {
	train := twoStateFrame(t, []int{1, 2})
	test := twoStateFrame(t, []int{3})

	if _, err := PrepareEvalData(train, test, "bogus", false); err == nil {
		t.Fatal("expected error for unknown feature set")
	}
}

func TestPrepareEvalDataSingleWeekTrain(t *testing.T) {
	train := twoStateFrame(t, []int{1})
	test := twoStateFrame(t, []int{2})

	if _, err := PrepareEvalData(train, test, "naive", false); err == nil {
		t.Fatal("expected error for single-week training data")
	}
}

func TestNormalizeBlockFitsOnTrainOnly(t *testing.T) {
	train := twoStateFrame(t, []int{1, 2})
	test := twoStateFrame(t, []int{5})

	normTrain, normTest, err := NormalizeBlock(train, test)
	if err != nil {
		t.Fatalf("NormalizeBlock failed: %v", err)
	}

	// Training values land in [0, 1].
	vals, _ := normTrain.Column("pop_2020")
	for i, v := range vals {
		if v < 0 || v > 1 {
			t.Errorf("train row %d: pop_2020 out of [0,1]: %f", i, v)
		}
	}

	// Test week's population is beyond the fitted range, so the scaled value
	// exceeds 1 instead of being refitted to the test distribution.
	testVals, _ := normTest.Column("pop_2020")
	if testVals[0] <= 1 {
		t.Errorf("expected test pop_2020 above 1, got %f", testVals[0])
	}

	// The inputs are untouched.
	orig, _ := train.Column("pop_2020")
	if math.Abs(orig[0]-100) > 1e-12 {
		t.Errorf("NormalizeBlock mutated input frame: %f", orig[0])
	}
}
