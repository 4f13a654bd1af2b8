package ensemble

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	id  ID
	p   float64
	err error
}

func (m stubModel) ID() ID { return m.id }

func (m stubModel) PredictProba([]float64) (float64, error) { return m.p, m.err }

func TestLabelFor(t *testing.T) {
	tests := []struct {
		p              float64
		wantLabel      string
		wantConfidence float64
	}{
		{0.9, LabelPhishing, 90},
		{0.51, LabelPhishing, 51},
		{0.5, LabelBenign, 50}, // exact tie resolves to benign
		{0.2, LabelBenign, 80},
		{0, LabelBenign, 100},
		{1, LabelPhishing, 100},
	}
	for _, tt := range tests {
		label, confidence := labelFor(tt.p)
		assert.Equal(t, tt.wantLabel, label, "p=%v", tt.p)
		assert.InDelta(t, tt.wantConfidence, confidence, 1e-9, "p=%v", tt.p)
	}
}

func TestNewScorerRequiresModels(t *testing.T) {
	_, err := NewScorer(nil, 30)
	assert.Error(t, err)
}

func TestScoreAggregatesMeanOfRawProbabilities(t *testing.T) {
	s, err := NewScorer([]Model{
		stubModel{id: LogisticRegression, p: 0.9},
		stubModel{id: RandomForest, p: 0.8},
		stubModel{id: SVM, p: 0.1},
	}, 3)
	require.NoError(t, err)

	v, err := s.Score([]float64{0, 0, 0})
	require.NoError(t, err)

	// mean of raw probabilities: (0.9 + 0.8 + 0.1) / 3 = 0.6
	assert.Equal(t, LabelPhishing, v.Label)
	assert.InDelta(t, 60, v.Confidence, 1e-9)

	require.Len(t, v.Models, 3)
	assert.Equal(t, "Logistic Regression", v.Models[0].Name)
	assert.Equal(t, LabelPhishing, v.Models[0].Label)
	assert.InDelta(t, 90, v.Models[0].Confidence, 1e-9)
	assert.Equal(t, LabelBenign, v.Models[2].Label)
	assert.InDelta(t, 90, v.Models[2].Confidence, 1e-9)
}

func TestScoreTieGoesBenign(t *testing.T) {
	s, err := NewScorer([]Model{
		stubModel{id: LogisticRegression, p: 0.4},
		stubModel{id: RandomForest, p: 0.6},
	}, 2)
	require.NoError(t, err)

	v, err := s.Score([]float64{0, 0})
	require.NoError(t, err)

	assert.Equal(t, LabelBenign, v.Label)
	assert.InDelta(t, 50, v.Confidence, 1e-9)
}

func TestScoreConfidenceIsDirectional(t *testing.T) {
	s, err := NewScorer([]Model{stubModel{id: SVM, p: 0.01}}, 1)
	require.NoError(t, err)

	v, err := s.Score([]float64{0})
	require.NoError(t, err)

	assert.Equal(t, LabelBenign, v.Label)
	assert.InDelta(t, 99, v.Confidence, 1e-9)
	assert.GreaterOrEqual(t, v.Confidence, 50.0)
}

func TestScoreRejectsWrongVectorLength(t *testing.T) {
	s, err := NewScorer([]Model{stubModel{id: SVM, p: 0.5}}, 30)
	require.NoError(t, err)

	_, err = s.Score([]float64{1, 2, 3})
	assert.ErrorContains(t, err, "expected 30")
}

func TestScoreModelFailureIsFatal(t *testing.T) {
	s, err := NewScorer([]Model{
		stubModel{id: LogisticRegression, p: 0.9},
		stubModel{id: RandomForest, err: fmt.Errorf("corrupt tree")},
	}, 1)
	require.NoError(t, err)

	_, err = s.Score([]float64{0})
	require.Error(t, err)
	assert.ErrorContains(t, err, "random_forest")
}
