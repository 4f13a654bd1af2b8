package ensemble

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// artifactFile is the on-disk JSON form of a fitted model. Exactly one
// parameter block must match the declared model kind.
type artifactFile struct {
	Model  ID              `json:"model"`
	Scaler *StandardScaler `json:"scaler,omitempty"`

	Coefficients []float64 `json:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`

	// Platt sigmoid calibration, SVM only.
	PlattA float64 `json:"platt_a,omitempty"`
	PlattB float64 `json:"platt_b,omitempty"`

	Trees []decisionTree `json:"trees,omitempty"`
}

// LoadModel reads one model artifact from disk. Artifacts are immutable
// values; a failure here is fatal to startup by contract, so the error is
// returned rather than absorbed.
func LoadModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	var art artifactFile
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}

	switch art.Model {
	case LogisticRegression:
		if len(art.Coefficients) == 0 {
			return nil, fmt.Errorf("artifact %s: missing coefficients", path)
		}
		return &logisticModel{
			id:        art.Model,
			scaler:    art.Scaler,
			coef:      art.Coefficients,
			intercept: art.Intercept,
		}, nil

	case SVM:
		if len(art.Coefficients) == 0 {
			return nil, fmt.Errorf("artifact %s: missing coefficients", path)
		}
		return &svmModel{
			id:        art.Model,
			scaler:    art.Scaler,
			coef:      art.Coefficients,
			intercept: art.Intercept,
			plattA:    art.PlattA,
			plattB:    art.PlattB,
		}, nil

	case RandomForest:
		if len(art.Trees) == 0 {
			return nil, fmt.Errorf("artifact %s: forest has no trees", path)
		}
		return &forestModel{
			id:     art.Model,
			scaler: art.Scaler,
			trees:  art.Trees,
		}, nil
	}

	return nil, fmt.Errorf("artifact %s: unknown model kind %q", path, art.Model)
}

// LoadAll loads one artifact per canonical model ID, in enumeration order.
// Every configured model must load; the ensemble refuses to serve with a
// member missing.
func LoadAll(paths map[ID]string) ([]Model, error) {
	models := make([]Model, 0, len(AllModels))
	for _, id := range AllModels {
		path, ok := paths[id]
		if !ok {
			return nil, fmt.Errorf("no artifact path configured for model %s", id)
		}
		m, err := LoadModel(path)
		if err != nil {
			return nil, err
		}
		if m.ID() != id {
			return nil, fmt.Errorf("artifact %s declares model %s, expected %s", path, m.ID(), id)
		}
		log.Infof("[INIT] loaded model %s from %s", id.DisplayName(), path)
		models = append(models, m)
	}
	return models, nil
}
