package evaluation

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

func gridSearchFixture(t *testing.T) (*data.Matrix, []float64, *data.Matrix, []float64) {
	t.Helper()

	xTrain, err := data.NewMatrix([]string{"1", "x^1"}, mat.NewDense(4, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 4,
	}))
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	yTrain := []float64{3, 5, 7, 9}

	xTest, err := data.NewMatrix([]string{"1", "x^1"}, mat.NewDense(2, 2, []float64{
		1, 5,
		1, 6,
	}))
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	yTest := []float64{11, 13}

	return xTrain, yTrain, xTest, yTest
}

func smallGrid() models.Grid {
	return models.Grid{
		models.LinearRegression: {models.LinearParams{FitIntercept: true}},
		models.Ridge:            {models.RidgeParams{Alpha: 0.1}, models.RidgeParams{Alpha: 1}},
	}
}

func TestRunGridSearchCellCount(t *testing.T) {
	xTrain, yTrain, xTest, yTest := gridSearchFixture(t)

	records, err := RunGridSearch(xTrain, yTrain, xTest, yTest, 5, 2, smallGrid(), 1)
	if err != nil {
		t.Fatalf("RunGridSearch failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	for i, rec := range records {
		if rec.TestWeek != 5 {
			t.Errorf("record %d: expected test week 5, got %d", i, rec.TestWeek)
		}
		if rec.Key.Degree != 2 {
			t.Errorf("record %d: expected degree 2, got %d", i, rec.Key.Degree)
		}
	}

	// Families in canonical order, grid entries in declaration order.
	if records[0].Key.Family != models.LinearRegression {
		t.Errorf("expected linear first, got %s", records[0].Key.Family)
	}
	if records[1].Key.Params != "alpha=0.1" || records[2].Key.Params != "alpha=1" {
		t.Errorf("unexpected ridge ordering: %s, %s", records[1].Key.Params, records[2].Key.Params)
	}
}

func TestRunGridSearchParallelMatchesSequential(t *testing.T) {
	xTrain, yTrain, xTest, yTest := gridSearchFixture(t)
	grid := models.DefaultGrid()

	sequential, err := RunGridSearch(xTrain, yTrain, xTest, yTest, 5, 1, grid, 1)
	if err != nil {
		t.Fatalf("sequential run failed: %v", err)
	}
	parallel, err := RunGridSearch(xTrain, yTrain, xTest, yTest, 5, 1, grid, 3)
	if err != nil {
		t.Fatalf("parallel run failed: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("record counts differ: %d vs %d", len(sequential), len(parallel))
	}
	for i := range sequential {
		if sequential[i].Key != parallel[i].Key {
			t.Errorf("record %d: keys differ: %v vs %v", i, sequential[i].Key, parallel[i].Key)
		}
		if sequential[i].Metrics != parallel[i].Metrics {
			t.Errorf("record %d: metrics differ: %+v vs %+v", i, sequential[i].Metrics, parallel[i].Metrics)
		}
	}
}

func TestRunGridSearchFitFailureAborts(t *testing.T) {
	xTrain, yTrain, xTest, yTest := gridSearchFixture(t)

	grid := models.Grid{
		models.Ridge: {models.RidgeParams{Alpha: -1}},
	}

	if _, err := RunGridSearch(xTrain, yTrain, xTest, yTest, 5, 1, grid, 1); err == nil {
		t.Fatal("expected error from invalid grid cell")
	}
}

func TestConfigKeyLabel(t *testing.T) {
	key := ConfigKey{Family: models.Ridge, Degree: 2, Params: "alpha=0.1"}
	if got := key.Label(); got != "Ridge degree_2 alpha=0.1" {
		t.Errorf("unexpected label: %s", got)
	}
}
