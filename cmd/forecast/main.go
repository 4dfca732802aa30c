package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/christi-liongson/capp30254-final-project/internal/experiment"
	"github.com/christi-liongson/capp30254-final-project/internal/forecast"
)

func main() {
	dataFile := flag.String("data", "", "Path to prepared observation CSV file")
	configFile := flag.String("config", "config/config.yaml", "Path to experiment configuration file")
	outputDir := flag.String("output", "results", "Output directory for evaluation tables")
	simulate := flag.String("simulate", "", "Run next-week simulation with overrides, e.g. \"no_visits=1,screening=1\" (empty overrides: \"-\")")
	simulateSet := flag.String("simulate-features", "total", "Feature set used for simulation")
	importance := flag.Bool("importance", false, "Rank expanded feature coefficients of each winner")
	entity := flag.String("entity", "", "Report holdout predictions for one state column, e.g. state_north_carolina")

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *dataFile == "" {
		fmt.Println("Usage:")
		fmt.Println("  go run cmd/forecast/main.go -data data/prison_conditions.csv")
		fmt.Println("  go run cmd/forecast/main.go -data data/prison_conditions.csv -simulate \"no_visits=1\"")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	runner, err := experiment.NewRunner(*configFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build runner")
	}

	start := time.Now()
	result, err := runner.Run(*dataFile)
	if err != nil {
		log.Fatal().Err(err).Msg("pipeline failed")
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("temporal cross-validation finished")

	printWinners(result)

	if err := exportTables(result, *outputDir); err != nil {
		log.Error().Err(err).Msg("failed to export evaluation tables")
	}

	if *simulate != "" {
		overrides, err := parseOverrides(*simulate)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid simulation overrides")
		}

		winner, ok := result.Winners[*simulateSet]
		if !ok {
			log.Fatal().Str("feature_set", *simulateSet).Msg("no winner available for simulation")
		}

		sim, err := forecast.Simulate(result.Dataset, overrides, *simulateSet, winner)
		if err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
		printSimulation(*simulateSet, sim)
	}

	if *importance {
		ranked, err := forecast.CompareImportance(result.Winners, result.Folds)
		if err != nil {
			log.Fatal().Err(err).Msg("feature importance extraction failed")
		}
		printImportance(ranked)
	}

	if *entity != "" {
		for featType, winner := range result.Winners {
			preds, err := forecast.PredictEntity(result.Train, result.Test, featType, *entity, winner)
			if err != nil {
				log.Fatal().Err(err).Str("feature_set", featType).Msg("entity prediction failed")
			}
			fmt.Printf("%s holdout predictions (%s): %v\n", *entity, featType, preds)
		}
	}
}

func printWinners(result *experiment.PipelineResult) {
	header := color.New(color.FgCyan, color.Bold)
	good := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	header.Println("\nWinning configurations")
	for featType, winner := range result.Winners {
		holdout := result.Holdout[featType]
		good.Printf("  %-12s %s\n", featType, winner.Label)
		fmt.Printf("               holdout mse=%.4f mae=%.4f rss=%.4f\n",
			holdout.MSE, holdout.MAE, holdout.RSS)
	}
	for featType, err := range result.Failed {
		bad.Printf("  %-12s FAILED: %v\n", featType, err)
	}
}

func printSimulation(featType string, sim *forecast.Simulation) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("\nSimulated week %d (%s)\n", sim.Week, featType)
	for i, v := range sim.Values {
		fmt.Printf("  observation %d: %.2f\n", i, v)
	}
}

func printImportance(ranked map[string][]forecast.Importance) {
	header := color.New(color.FgCyan, color.Bold)
	header.Println("\nFeature importance")
	for featType, imps := range ranked {
		fmt.Printf("  %s:\n", featType)
		for _, imp := range imps {
			fmt.Printf("    %-30s %.4f\n", imp.Feature, imp.Coefficient)
		}
	}
}

func exportTables(result *experiment.PipelineResult, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	for featType, table := range result.Tables {
		filename := filepath.Join(outputDir, fmt.Sprintf("cv_%s_%s.csv", featType, timestamp))
		if err := experiment.ExportResults(table, filename); err != nil {
			return err
		}
	}
	return nil
}

// parseOverrides reads "col=val,col=val" into a column override map. The
// sentinel "-" means simulate with no overrides.
func parseOverrides(s string) (map[string]float64, error) {
	overrides := make(map[string]float64)
	if s == "-" {
		return overrides, nil
	}

	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid override %q, expected col=value", pair)
		}
		val, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid override value in %q: %w", pair, err)
		}
		overrides[parts[0]] = val
	}
	return overrides, nil
}
