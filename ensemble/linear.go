package ensemble

import (
	"fmt"
	"math"
)

// logisticModel is a fitted logistic regression: p = sigmoid(w·x + b).
type logisticModel struct {
	id        ID
	scaler    *StandardScaler
	coef      []float64
	intercept float64
}

func (m *logisticModel) ID() ID { return m.id }

func (m *logisticModel) PredictProba(vector []float64) (float64, error) {
	x, err := maybeScale(m.scaler, vector)
	if err != nil {
		return 0, err
	}
	z, err := dot(m.coef, x)
	if err != nil {
		return 0, err
	}
	return sigmoid(z + m.intercept), nil
}

// svmModel is a fitted linear SVM with Platt sigmoid calibration:
// p = 1 / (1 + exp(A*f + B)) where f is the decision value.
type svmModel struct {
	id        ID
	scaler    *StandardScaler
	coef      []float64
	intercept float64
	plattA    float64
	plattB    float64
}

func (m *svmModel) ID() ID { return m.id }

func (m *svmModel) PredictProba(vector []float64) (float64, error) {
	x, err := maybeScale(m.scaler, vector)
	if err != nil {
		return 0, err
	}
	f, err := dot(m.coef, x)
	if err != nil {
		return 0, err
	}
	f += m.intercept
	return 1 / (1 + math.Exp(m.plattA*f+m.plattB)), nil
}

func dot(coef, x []float64) (float64, error) {
	if len(coef) != len(x) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(coef), len(x))
	}
	var sum float64
	for i, c := range coef {
		sum += c * x[i]
	}
	return sum, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
