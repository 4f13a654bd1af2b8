package ensemble

import "fmt"

// StandardScaler applies the per-feature standardization fitted at
// training time: (x - mean) / scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Transform standardizes a vector. The input is not modified.
func (s *StandardScaler) Transform(vector []float64) ([]float64, error) {
	if len(s.Mean) != len(vector) || len(s.Scale) != len(vector) {
		return nil, fmt.Errorf("scaler expects %d features, got %d", len(s.Mean), len(vector))
	}

	out := make([]float64, len(vector))
	for i, v := range vector {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}
	return out, nil
}

// maybeScale applies the scaler when present.
func maybeScale(s *StandardScaler, vector []float64) ([]float64, error) {
	if s == nil {
		return vector, nil
	}
	return s.Transform(vector)
}
