package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Logistic Regression", LogisticRegression.DisplayName())
	assert.Equal(t, "Random Forest", RandomForest.DisplayName())
	assert.Equal(t, "Support Vector Machine", SVM.DisplayName())
	assert.Equal(t, "mystery", ID("mystery").DisplayName())
}

func TestStandardScalerTransform(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 2}, Scale: []float64{2, 0}}

	out, err := s.Transform([]float64{3, 2})
	require.NoError(t, err)

	// zero scale falls back to dividing by one
	assert.Equal(t, []float64{1, 0}, out)
}

func TestStandardScalerLengthMismatch(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1}, Scale: []float64{1}}

	_, err := s.Transform([]float64{1, 2})
	assert.Error(t, err)
}

func TestStandardScalerDoesNotMutateInput(t *testing.T) {
	s := &StandardScaler{Mean: []float64{1, 1}, Scale: []float64{1, 1}}
	in := []float64{5, 6}

	_, err := s.Transform(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, in)
}

func TestLogisticPredictProba(t *testing.T) {
	m := &logisticModel{
		id:        LogisticRegression,
		coef:      []float64{1, -2},
		intercept: 0.5,
	}

	// z = 1*2 + (-2)*1 + 0.5 = 0.5
	p, err := m.PredictProba([]float64{2, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.6224593312018546, p, 1e-12)
}

func TestLogisticPredictProbaWithScaler(t *testing.T) {
	m := &logisticModel{
		id:     LogisticRegression,
		scaler: &StandardScaler{Mean: []float64{2, 1}, Scale: []float64{1, 1}},
		coef:   []float64{1, 1},
	}

	// scaled vector is all zeros, so p = sigmoid(0) = 0.5
	p, err := m.PredictProba([]float64{2, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.5, p)
}

func TestLogisticLengthMismatch(t *testing.T) {
	m := &logisticModel{id: LogisticRegression, coef: []float64{1, 2}}

	_, err := m.PredictProba([]float64{1})
	assert.Error(t, err)
}

func TestSVMPlattCalibration(t *testing.T) {
	m := &svmModel{
		id:     SVM,
		coef:   []float64{1},
		plattA: -1,
		plattB: 0,
	}

	// f = 2, p = 1 / (1 + exp(-2))
	p, err := m.PredictProba([]float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 0.8807970779778823, p, 1e-12)
}

func TestForestAveragesTrees(t *testing.T) {
	confident := decisionTree{Nodes: []treeNode{
		{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Feature: -1, Value: [2]float64{3, 1}},
		{Feature: -1, Value: [2]float64{0, 4}},
	}}
	leafOnly := decisionTree{Nodes: []treeNode{
		{Feature: -1, Value: [2]float64{1, 1}},
	}}
	m := &forestModel{id: RandomForest, trees: []decisionTree{confident, leafOnly}}

	// high feature routes to the [0,4] leaf: (1.0 + 0.5) / 2
	p, err := m.PredictProba([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, 0.75, p)

	// low feature routes to the [3,1] leaf: (0.25 + 0.5) / 2
	p, err = m.PredictProba([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, 0.375, p)
}

func TestForestRejectsBadTree(t *testing.T) {
	m := &forestModel{id: RandomForest, trees: []decisionTree{{Nodes: []treeNode{
		{Feature: 5, Threshold: 0.5, Left: 1, Right: 1},
		{Feature: -1, Value: [2]float64{1, 0}},
	}}}}

	_, err := m.PredictProba([]float64{1})
	assert.ErrorContains(t, err, "beyond vector length")
}

func TestForestEmptyLeaf(t *testing.T) {
	m := &forestModel{id: RandomForest, trees: []decisionTree{{Nodes: []treeNode{
		{Feature: -1, Value: [2]float64{0, 0}},
	}}}}

	p, err := m.PredictProba([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}
