// Package ensemble scores feature vectors with a set of pre-trained
// classifiers and aggregates their outputs into a single verdict. Models
// are opaque fitted artifacts loaded once at startup; nothing here trains
// or refits anything.
package ensemble

// ID is the canonical identifier of a classifier. The network-visible
// display name is derived from it, never the other way around.
type ID string

const (
	LogisticRegression ID = "logistic_regression"
	RandomForest       ID = "random_forest"
	SVM                ID = "svm"
)

// AllModels fixes the enumeration order of the ensemble. Scoring iterates
// in this order.
var AllModels = []ID{LogisticRegression, RandomForest, SVM}

// DisplayName returns the human-readable label for the model.
func (id ID) DisplayName() string {
	switch id {
	case LogisticRegression:
		return "Logistic Regression"
	case RandomForest:
		return "Random Forest"
	case SVM:
		return "Support Vector Machine"
	}
	return string(id)
}

// Model is a fitted classifier. PredictProba returns the probability of
// the positive (phishing) class for a full-length feature vector. Models
// that embed their own scaling apply it transparently.
type Model interface {
	ID() ID
	PredictProba(vector []float64) (float64, error)
}
