package ensemble

import (
	"fmt"
)

// Verdict labels.
const (
	LabelBenign   = "benign"
	LabelPhishing = "phishing"
)

// ModelScore is the per-model breakdown entry. Confidence is directional:
// it expresses confidence in the chosen label, so it is always >= 50.
type ModelScore struct {
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Label       string  `json:"label"`
	Confidence  float64 `json:"confidence"`
}

// Verdict is the aggregated ensemble output for one vector.
type Verdict struct {
	Label      string       `json:"label"`
	Confidence float64      `json:"confidence"`
	Models     []ModelScore `json:"models"`
}

// labelFor applies the strict > 0.5 rule and the directional-confidence
// transform. A probability of exactly 0.5 resolves to benign.
func labelFor(p float64) (string, float64) {
	if p > 0.5 {
		return LabelPhishing, p * 100
	}
	return LabelBenign, (1 - p) * 100
}

// Scorer runs a fixed ensemble over feature vectors. Stateless per
// request.
type Scorer struct {
	models       []Model
	vectorLength int
}

// NewScorer builds a scorer over the loaded models. At least one model is
// required.
func NewScorer(models []Model, vectorLength int) (*Scorer, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("ensemble requires at least one model")
	}
	return &Scorer{models: models, vectorLength: vectorLength}, nil
}

// Score feeds the vector to every model in enumeration order and
// aggregates. The overall score is the arithmetic mean of the raw
// phishing probabilities, not of the per-model confidences. A vector of
// the wrong length or a model failure is fatal to the request: no partial
// verdict is produced.
func (s *Scorer) Score(vector []float64) (Verdict, error) {
	if len(vector) != s.vectorLength {
		return Verdict{}, fmt.Errorf("feature vector has length %d, expected %d", len(vector), s.vectorLength)
	}

	scores := make([]ModelScore, 0, len(s.models))
	var sum float64

	for _, m := range s.models {
		p, err := m.PredictProba(vector)
		if err != nil {
			return Verdict{}, fmt.Errorf("model %s: %w", m.ID(), err)
		}
		sum += p

		label, confidence := labelFor(p)
		scores = append(scores, ModelScore{
			Name:        m.ID().DisplayName(),
			Probability: p,
			Label:       label,
			Confidence:  confidence,
		})
	}

	mean := sum / float64(len(s.models))
	label, confidence := labelFor(mean)

	return Verdict{
		Label:      label,
		Confidence: confidence,
		Models:     scores,
	}, nil
}
