package preprocessing

import (
	"fmt"
	"sort"
	"strings"
)

// OneHotEncoder turns a categorical column (state names) into indicator
// columns named "<prefix><category>". Categories are sorted at fit time so
// the produced column order is stable across runs.
type OneHotEncoder struct {
	Prefix     string
	Categories []string
	IsFitted   bool
	index      map[string]int
}

func NewOneHotEncoder(prefix string) *OneHotEncoder {
	return &OneHotEncoder{
		Prefix: prefix,
		index:  make(map[string]int),
	}
}

func (oh *OneHotEncoder) Fit(values []string) {
	unique := make(map[string]bool)
	for _, v := range values {
		unique[normalizeCategory(v)] = true
	}

	oh.Categories = make([]string, 0, len(unique))
	for v := range unique {
		oh.Categories = append(oh.Categories, v)
	}
	sort.Strings(oh.Categories)

	oh.index = make(map[string]int, len(oh.Categories))
	for i, v := range oh.Categories {
		oh.index[v] = i
	}

	oh.IsFitted = true
}

func (oh *OneHotEncoder) Transform(values []string) ([][]float64, error) {
	if !oh.IsFitted {
		return nil, fmt.Errorf("OneHotEncoder must be fitted before transform")
	}

	result := make([][]float64, len(values))
	for i, v := range values {
		idx, ok := oh.index[normalizeCategory(v)]
		if !ok {
			return nil, fmt.Errorf("unknown category: %s", v)
		}
		row := make([]float64, len(oh.Categories))
		row[idx] = 1
		result[i] = row
	}

	return result, nil
}

func (oh *OneHotEncoder) FitTransform(values []string) ([][]float64, error) {
	oh.Fit(values)
	return oh.Transform(values)
}

func (oh *OneHotEncoder) ColumnNames() []string {
	names := make([]string, len(oh.Categories))
	for i, v := range oh.Categories {
		names[i] = oh.Prefix + v
	}
	return names
}

func normalizeCategory(v string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(v)), " ", "_")
}
