package experiment

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
	"github.com/christi-liongson/capp30254-final-project/internal/evaluation"
	"github.com/christi-liongson/capp30254-final-project/internal/features"
	"github.com/christi-liongson/capp30254-final-project/internal/jobs"
	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

type ExperimentConfig struct {
	Experiment struct {
		FeatureSets []string `yaml:"feature_sets"`
		Degrees     []int    `yaml:"degrees"`
		Workers     int      `yaml:"workers"`
		Grid        struct {
			LinearRegression struct {
				FitIntercept []bool `yaml:"fit_intercept"`
			} `yaml:"linear_regression"`
			Lasso struct {
				Alpha []float64 `yaml:"alpha"`
			} `yaml:"lasso"`
			Ridge struct {
				Alpha []float64 `yaml:"alpha"`
			} `yaml:"ridge"`
			ElasticNet struct {
				Alpha   []float64 `yaml:"alpha"`
				L1Ratio []float64 `yaml:"l1_ratio"`
			} `yaml:"elastic_net"`
		} `yaml:"grid"`
	} `yaml:"experiment"`
}

// Runner drives the full pipeline: global split, fold construction, temporal
// cross-validation per feature set, winner selection, and holdout scoring.
// Feature sets are isolated, so one set's failure leaves the others' results
// intact.
type Runner struct {
	Config *ExperimentConfig
	Jobs   *jobs.Manager
	log    zerolog.Logger
}

func NewRunner(configFile string, log zerolog.Logger) (*Runner, error) {
	config := &ExperimentConfig{}

	if configFile != "" {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return &Runner{
		Config: config,
		Jobs:   jobs.NewManager(),
		log:    log.With().Str("component", "experiment.runner").Logger(),
	}, nil
}

// PipelineResult collects everything a caller needs downstream: the winners,
// the raw evaluation tables, holdout metrics, and the artifacts (folds, full
// dataset, split) the forecast package consumes.
type PipelineResult struct {
	Dataset *data.Frame
	Train   *data.Frame
	Test    *data.Frame
	Folds   []evaluation.Fold
	Winners map[string]evaluation.WinningConfig
	Tables  map[string][]evaluation.Record
	Holdout map[string]evaluation.Metrics
	Failed  map[string]error
}

func (r *Runner) Run(dataFile string) (*PipelineResult, error) {
	dataset, err := data.NewCSVReader(dataFile).LoadFrame()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	required := append([]string{features.Target}, mustColumns("total")...)
	if err := data.NewValidator().ValidateFrame(dataset, required); err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}

	r.log.Info().
		Int("rows", dataset.NumRows()).
		Int("columns", len(dataset.Columns())).
		Msg("dataset loaded")

	splitter := evaluation.NewTemporalSplitter()
	train, test, err := splitter.GlobalSplit(dataset)
	if err != nil {
		return nil, err
	}
	if err := data.NewValidator().ValidateSplit(train, test); err != nil {
		return nil, err
	}

	folds, err := splitter.Folds(train)
	if err != nil {
		return nil, err
	}
	r.log.Info().Int("folds", len(folds)).Msg("expanding-window folds built")

	result := &PipelineResult{
		Dataset: dataset,
		Train:   train,
		Test:    test,
		Folds:   folds,
		Winners: make(map[string]evaluation.WinningConfig),
		Tables:  make(map[string][]evaluation.Record),
		Holdout: make(map[string]evaluation.Metrics),
		Failed:  make(map[string]error),
	}

	grid := r.buildGrid()
	degrees := r.Config.Experiment.Degrees
	if len(degrees) == 0 {
		degrees = []int{1, 2, 3}
	}
	featureSets := r.Config.Experiment.FeatureSets
	if len(featureSets) == 0 {
		featureSets = features.SetNames()
	}

	stateCols := features.StateColumns(train)

	for _, featType := range featureSets {
		job := r.Jobs.CreateJob("temporal_cv", fmt.Sprintf("temporal CV for feature set %s", featType))
		job.SetStatus(jobs.JobRunning)

		winner, table, err := r.runFeatureSet(featType, folds, stateCols, degrees, grid)
		if err != nil {
			job.SetError(err)
			result.Failed[featType] = err
			r.log.Error().Err(err).Str("feature_set", featType).Msg("feature set failed")
			continue
		}

		result.Winners[featType] = winner
		result.Tables[featType] = table
		job.AddLog(fmt.Sprintf("selected %s from %d evaluation rows", winner.Label, len(table)))
		job.SetProgress(0.5)

		holdout, err := EvaluateHoldout(train, test, featType, winner, nil)
		if err != nil {
			job.SetError(err)
			result.Failed[featType] = err
			r.log.Error().Err(err).Str("feature_set", featType).Msg("holdout evaluation failed")
			continue
		}
		result.Holdout[featType] = holdout

		job.SetProgress(1)
		job.SetStatus(jobs.JobCompleted)
		r.log.Info().
			Str("feature_set", featType).
			Str("winner", winner.Label).
			Float64("holdout_mse", holdout.MSE).
			Msg("feature set completed")
	}

	return result, nil
}

func (r *Runner) runFeatureSet(featType string, folds []evaluation.Fold,
	stateCols []string, degrees []int, grid models.Grid) (evaluation.WinningConfig, []evaluation.Record, error) {

	setCols, err := features.Columns(featType)
	if err != nil {
		return evaluation.WinningConfig{}, nil, err
	}

	table, err := evaluation.CrossValidate(folds, append(setCols, stateCols...),
		features.Target, degrees, grid, r.Config.Experiment.Workers)
	if err != nil {
		return evaluation.WinningConfig{}, nil, err
	}

	winner, err := evaluation.SelectWinner(table)
	if err != nil {
		return evaluation.WinningConfig{}, nil, err
	}

	return winner, table, nil
}

// EvaluateHoldout refits a winning configuration on the global training
// partition and scores it on the held-out final week. Columns named in
// dropCols are removed from both design matrices before fitting.
func EvaluateHoldout(train, test *data.Frame, featType string,
	winner evaluation.WinningConfig, dropCols []string) (evaluation.Metrics, error) {

	ed, err := features.PrepareEvalData(train, test, featType, true)
	if err != nil {
		return evaluation.Metrics{}, err
	}

	xTrain := ed.XTrain.Drop(dropCols...)
	xTest := ed.XTest.Drop(dropCols...)

	preds, err := evaluation.FitAndPredict(xTrain, ed.YTrain, xTest, winner.Params)
	if err != nil {
		return evaluation.Metrics{}, err
	}

	return evaluation.Evaluate(ed.YTest, preds)
}

// buildGrid assembles the search space from the config, falling back to the
// default grid when a family has no configured values.
func (r *Runner) buildGrid() models.Grid {
	cfg := r.Config.Experiment.Grid
	defaults := models.DefaultGrid()
	grid := models.Grid{}

	if len(cfg.LinearRegression.FitIntercept) > 0 {
		for _, fi := range cfg.LinearRegression.FitIntercept {
			grid[models.LinearRegression] = append(grid[models.LinearRegression],
				models.LinearParams{FitIntercept: fi})
		}
	} else {
		grid[models.LinearRegression] = defaults[models.LinearRegression]
	}

	if len(cfg.Lasso.Alpha) > 0 {
		for _, alpha := range cfg.Lasso.Alpha {
			grid[models.Lasso] = append(grid[models.Lasso], models.NewLassoParams(alpha))
		}
	} else {
		grid[models.Lasso] = defaults[models.Lasso]
	}

	if len(cfg.Ridge.Alpha) > 0 {
		for _, alpha := range cfg.Ridge.Alpha {
			grid[models.Ridge] = append(grid[models.Ridge], models.RidgeParams{Alpha: alpha})
		}
	} else {
		grid[models.Ridge] = defaults[models.Ridge]
	}

	if len(cfg.ElasticNet.Alpha) > 0 {
		ratios := cfg.ElasticNet.L1Ratio
		if len(ratios) == 0 {
			ratios = []float64{0.5}
		}
		for _, alpha := range cfg.ElasticNet.Alpha {
			for _, ratio := range ratios {
				grid[models.ElasticNet] = append(grid[models.ElasticNet],
					models.NewElasticNetParams(alpha, ratio))
			}
		}
	} else {
		grid[models.ElasticNet] = defaults[models.ElasticNet]
	}

	return grid
}

// ExportResults writes one feature set's evaluation table as CSV.
func ExportResults(table []evaluation.Record, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"label", "model", "degree", "parameters", "test_week",
		"mse", "mae", "rss", "run_time_ms",
	}); err != nil {
		return err
	}

	for _, rec := range table {
		if err := writer.Write([]string{
			rec.Key.Label(),
			string(rec.Key.Family),
			fmt.Sprintf("%d", rec.Key.Degree),
			rec.Key.Params,
			fmt.Sprintf("%d", rec.TestWeek),
			fmt.Sprintf("%.6f", rec.Metrics.MSE),
			fmt.Sprintf("%.6f", rec.Metrics.MAE),
			fmt.Sprintf("%.6f", rec.Metrics.RSS),
			fmt.Sprintf("%d", rec.RunTime.Milliseconds()),
		}); err != nil {
			return err
		}
	}

	return nil
}

func mustColumns(name string) []string {
	cols, err := features.Columns(name)
	if err != nil {
		panic(err)
	}
	return cols
}
