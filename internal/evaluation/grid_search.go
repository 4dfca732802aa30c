package evaluation

import (
	"fmt"
	"sync"
	"time"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

// ConfigKey uniquely identifies a grid cell across folds: one model family at
// one polynomial degree with one rendered hyperparameter set.
type ConfigKey struct {
	Family models.Family
	Degree int
	Params string
}

// Label renders the key in the canonical "{family} degree_{d} {params}" form
// used to join evaluation records during selection.
func (k ConfigKey) Label() string {
	return fmt.Sprintf("%s degree_%d %s", k.Family, k.Degree, k.Params)
}

// Record is one row of the evaluation table: one grid cell scored against one
// fold. Records are produced once and never mutated.
type Record struct {
	Key         ConfigKey
	Hyperparams models.Hyperparams
	TestWeek    int
	Metrics     Metrics
	RunTime     time.Duration
}

// RunGridSearch scores every (family, hyperparameter) combination in the grid
// against one train/test split at one polynomial degree. Cells are evaluated
// independently; with workers > 1 they run on a worker pool, with results
// merged back in the same order sequential execution would produce. Any fit
// failure aborts the whole call.
func RunGridSearch(xTrain *data.Matrix, yTrain []float64, xTest *data.Matrix, yTest []float64,
	testWeek, degree int, grid models.Grid, workers int) ([]Record, error) {

	type cell struct {
		family models.Family
		params models.Hyperparams
	}

	var cells []cell
	for _, family := range models.Families() {
		for _, params := range grid.Params(family) {
			cells = append(cells, cell{family: family, params: params})
		}
	}

	records := make([]Record, len(cells))
	errs := make([]error, len(cells))

	evaluate := func(idx int) {
		c := cells[idx]

		start := time.Now()
		preds, err := FitAndPredict(xTrain, yTrain, xTest, c.params)
		elapsed := time.Since(start)
		if err != nil {
			errs[idx] = err
			return
		}

		metrics, err := Evaluate(yTest, preds)
		if err != nil {
			errs[idx] = fmt.Errorf("evaluate %s: %w", c.family, err)
			return
		}

		records[idx] = Record{
			Key: ConfigKey{
				Family: c.family,
				Degree: degree,
				Params: c.params.Key(),
			},
			Hyperparams: c.params,
			TestWeek:    testWeek,
			Metrics:     metrics,
			RunTime:     elapsed,
		}
	}

	if workers > 1 {
		if workers > len(cells) {
			workers = len(cells)
		}

		jobs := make(chan int, len(cells))
		var wg sync.WaitGroup

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for idx := range jobs {
					evaluate(idx)
				}
			}()
		}

		for idx := range cells {
			jobs <- idx
		}
		close(jobs)
		wg.Wait()
	} else {
		for idx := range cells {
			evaluate(idx)
		}
	}

	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("grid search cell %d (test week %d, degree %d): %w",
				idx, testWeek, degree, err)
		}
	}

	return records, nil
}
