// Package features defines the named predictor sets for the prison COVID
// dataset and the feature assembly applied before model fitting.
package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/christi-liongson/capp30254-final-project/internal/data"
)

const (
	// Target is the column every model predicts.
	Target = "total_prisoner_cases"
	// LagCases carries the previous week's total; undefined for the first
	// observed week.
	LagCases = "lag_prisoner_cases"
	// NewCases carries the week-over-week case increase.
	NewCases = "new_prisoner_cases"
	// StatePrefix marks the one-hot state indicator columns.
	StatePrefix = "state_"
)

var ErrUnknownFeatureSet = errors.New("unknown feature set")

var sets = map[string][]string{
	"naive": {LagCases, NewCases},
	"population": {"pop_2020", "pop_2018", "capacity", "pct_occup",
		LagCases, NewCases},
	"policy": {"no_visits", "lawyer_access", "phone_access", "video_access",
		"no_volunteers", "limiting_movement", "screening",
		"healthcare_support", LagCases, NewCases},
	"total": {"pop_2020", "pop_2018", "capacity", "pct_occup",
		"no_visits", "lawyer_access", "phone_access", "video_access",
		"no_volunteers", "limiting_movement", "screening",
		"healthcare_support", LagCases, NewCases},
}

// SetNames returns the feature set names in their canonical run order.
func SetNames() []string {
	return []string{"naive", "population", "policy", "total"}
}

// Columns returns the predictor columns of a named feature set.
func Columns(name string) ([]string, error) {
	cols, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeatureSet, name)
	}
	return append([]string(nil), cols...), nil
}

// StateColumns returns every one-hot state indicator column present in the
// frame, in frame column order.
func StateColumns(f *data.Frame) []string {
	var cols []string
	for _, col := range f.Columns() {
		if strings.HasPrefix(col, StatePrefix) {
			cols = append(cols, col)
		}
	}
	return cols
}
