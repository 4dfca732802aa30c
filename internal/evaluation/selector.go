package evaluation

import (
	"errors"
	"fmt"

	"github.com/christi-liongson/capp30254-final-project/internal/models"
)

var ErrEmptyEvalTable = errors.New("evaluation table is empty")

// Aggregate is one configuration's metrics averaged over every fold it was
// scored on.
type Aggregate struct {
	Key     ConfigKey
	MeanMSE float64
	MeanMAE float64
	MeanRSS float64
}

// WinningConfig is the single configuration chosen for a feature set.
type WinningConfig struct {
	Family models.Family
	Degree int
	Params models.Hyperparams
	Label  string
}

// aggregateByKey averages metrics per configuration, preserving the order in
// which configurations first appear in the table so downstream tie-breaks
// stay deterministic.
func aggregateByKey(table []Record) []Aggregate {
	type sums struct {
		mse, mae, rss float64
		count         int
	}

	index := make(map[ConfigKey]int)
	var order []ConfigKey
	totals := make(map[ConfigKey]*sums)

	for _, rec := range table {
		if _, seen := index[rec.Key]; !seen {
			index[rec.Key] = len(order)
			order = append(order, rec.Key)
			totals[rec.Key] = &sums{}
		}
		t := totals[rec.Key]
		t.mse += rec.Metrics.MSE
		t.mae += rec.Metrics.MAE
		t.rss += rec.Metrics.RSS
		t.count++
	}

	aggs := make([]Aggregate, len(order))
	for i, key := range order {
		t := totals[key]
		n := float64(t.count)
		aggs[i] = Aggregate{
			Key:     key,
			MeanMSE: t.mse / n,
			MeanMAE: t.mae / n,
			MeanRSS: t.rss / n,
		}
	}
	return aggs
}

// FindBestModels pools every configuration that achieves the minimum mean
// value of at least one metric. A configuration that wins two metrics appears
// twice; ties on a metric contribute every tied configuration.
func FindBestModels(table []Record) ([]Aggregate, error) {
	if len(table) == 0 {
		return nil, ErrEmptyEvalTable
	}

	aggs := aggregateByKey(table)

	var pool []Aggregate
	for _, metric := range []func(Aggregate) float64{
		func(a Aggregate) float64 { return a.MeanMSE },
		func(a Aggregate) float64 { return a.MeanMAE },
		func(a Aggregate) float64 { return a.MeanRSS },
	} {
		best := metric(aggs[0])
		for _, a := range aggs[1:] {
			if metric(a) < best {
				best = metric(a)
			}
		}
		for _, a := range aggs {
			if metric(a) == best {
				pool = append(pool, a)
			}
		}
	}

	return pool, nil
}

// SelectWinner tallies the pooled best configurations per model family and
// picks the family with the most appearances. Ties break deterministically:
// lower best mean MSE among the family's pooled entries, then the
// lexicographically smaller family name. The winning configuration is the
// first row of that family in table order.
func SelectWinner(table []Record) (WinningConfig, error) {
	pool, err := FindBestModels(table)
	if err != nil {
		return WinningConfig{}, err
	}

	counts := make(map[models.Family]int)
	bestMSE := make(map[models.Family]float64)
	for _, a := range pool {
		family := a.Key.Family
		counts[family]++
		if mse, seen := bestMSE[family]; !seen || a.MeanMSE < mse {
			bestMSE[family] = a.MeanMSE
		}
	}

	var winner models.Family
	chosen := false
	for family, count := range counts {
		if !chosen {
			winner = family
			chosen = true
			continue
		}
		switch {
		case count > counts[winner]:
			winner = family
		case count == counts[winner] && bestMSE[family] < bestMSE[winner]:
			winner = family
		case count == counts[winner] && bestMSE[family] == bestMSE[winner] && family < winner:
			winner = family
		}
	}

	for _, rec := range table {
		if rec.Key.Family == winner {
			return WinningConfig{
				Family: winner,
				Degree: rec.Key.Degree,
				Params: rec.Hyperparams,
				Label:  rec.Key.Label(),
			}, nil
		}
	}

	return WinningConfig{}, fmt.Errorf("no record found for winning family %s", winner)
}
