package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scaler rescales a block of feature columns. Fit it on training rows only
// and apply the fitted transform to test rows, so no test-week information
// leaks into the scaling parameters.
type Scaler struct {
	ScaleType   string
	IsFitted    bool
	FeatureMin  []float64
	FeatureMax  []float64
	FeatureMean []float64
	FeatureStd  []float64
}

func NewScaler(scaleType string) *Scaler {
	return &Scaler{
		ScaleType: scaleType,
		IsFitted:  false,
	}
}

func (s *Scaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("empty dataset")
	}

	nFeatures := len(X[0])
	s.FeatureMin = make([]float64, nFeatures)
	s.FeatureMax = make([]float64, nFeatures)
	s.FeatureMean = make([]float64, nFeatures)
	s.FeatureStd = make([]float64, nFeatures)

	switch s.ScaleType {
	case "minmax", "normalized":
		s.fitMinMax(X)
	case "standard", "standardized":
		s.fitStandard(X)
	case "raw", "none":
	default:
		return fmt.Errorf("unknown scale type: %s", s.ScaleType)
	}

	s.IsFitted = true
	return nil
}

func (s *Scaler) Transform(X [][]float64) ([][]float64, error) {
	if !s.IsFitted {
		return nil, fmt.Errorf("scaler must be fitted before transform")
	}

	result := make([][]float64, len(X))
	for i := range X {
		result[i] = make([]float64, len(X[i]))
		for j := range X[i] {
			switch s.ScaleType {
			case "minmax", "normalized":
				result[i][j] = s.transformMinMax(X[i][j], j)
			case "standard", "standardized":
				result[i][j] = s.transformStandard(X[i][j], j)
			default:
				result[i][j] = X[i][j]
			}
		}
	}

	return result, nil
}

func (s *Scaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

func (s *Scaler) fitMinMax(X [][]float64) {
	nFeatures := len(X[0])

	for j := 0; j < nFeatures; j++ {
		s.FeatureMin[j] = X[0][j]
		s.FeatureMax[j] = X[0][j]

		for i := 1; i < len(X); i++ {
			if X[i][j] < s.FeatureMin[j] {
				s.FeatureMin[j] = X[i][j]
			}
			if X[i][j] > s.FeatureMax[j] {
				s.FeatureMax[j] = X[i][j]
			}
		}
	}
}

func (s *Scaler) fitStandard(X [][]float64) {
	nFeatures := len(X[0])
	column := make([]float64, len(X))

	for j := 0; j < nFeatures; j++ {
		for i := range X {
			column[i] = X[i][j]
		}

		mean, std := stat.MeanStdDev(column, nil)
		s.FeatureMean[j] = mean
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		s.FeatureStd[j] = std
	}
}

func (s *Scaler) transformMinMax(value float64, featureIndex int) float64 {
	span := s.FeatureMax[featureIndex] - s.FeatureMin[featureIndex]
	if span == 0 {
		return 0
	}
	return (value - s.FeatureMin[featureIndex]) / span
}

func (s *Scaler) transformStandard(value float64, featureIndex int) float64 {
	return (value - s.FeatureMean[featureIndex]) / s.FeatureStd[featureIndex]
}
