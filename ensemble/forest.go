package ensemble

import "fmt"

// treeNode is one node of a serialized CART tree. Internal nodes route on
// vector[Feature] <= Threshold; leaves (Feature < 0) carry the class
// distribution [benign, phishing].
type treeNode struct {
	Feature   int        `json:"feature"`
	Threshold float64    `json:"threshold"`
	Left      int        `json:"left"`
	Right     int        `json:"right"`
	Value     [2]float64 `json:"value"`
}

type decisionTree struct {
	Nodes []treeNode `json:"nodes"`
}

// proba walks the tree and returns the positive-class fraction at the
// reached leaf.
func (t *decisionTree) proba(vector []float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("empty tree")
	}

	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.Feature < 0 {
			total := node.Value[0] + node.Value[1]
			if total == 0 {
				return 0, nil
			}
			return node.Value[1] / total, nil
		}
		if node.Feature >= len(vector) {
			return 0, fmt.Errorf("tree references feature %d beyond vector length %d", node.Feature, len(vector))
		}
		if vector[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.Nodes) {
			return 0, fmt.Errorf("tree child index %d out of range", idx)
		}
	}
	return 0, fmt.Errorf("tree walk did not terminate")
}

// forestModel averages the leaf probabilities of its trees.
type forestModel struct {
	id     ID
	scaler *StandardScaler
	trees  []decisionTree
}

func (m *forestModel) ID() ID { return m.id }

func (m *forestModel) PredictProba(vector []float64) (float64, error) {
	if len(m.trees) == 0 {
		return 0, fmt.Errorf("forest has no trees")
	}
	x, err := maybeScale(m.scaler, vector)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := range m.trees {
		p, err := m.trees[i].proba(x)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum / float64(len(m.trees)), nil
}
