package classify

import (
	"slices"

	"multiagent/utils"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

const DEFAULT_C = 0.001

// TUNING_GRID is searched when automatic tuning is enabled.
var TUNING_GRID = []float64{0.002, 0.004, 0.008}

// Mira is a multi-class linear classifier trained with the margin-infused
// relaxed algorithm: each mistake moves the predicted and true label weights
// by the smallest step that fixes it, capped at C.
type Mira struct {
	Labels          []int
	MaxIterations   int
	AutomaticTuning bool
	C               float64

	weights map[int][]float64 // Per label, one weight per feature
	bestC   float64
}

func NewMira(labels []int, maxIterations int) *Mira {
	if len(labels) == 0 {
		panic("classifier needs at least one label")
	}
	return &Mira{
		Labels:        slices.Clone(labels),
		MaxIterations: maxIterations,
		C:             DEFAULT_C,
		weights:       map[int][]float64{},
	}
}

// Train fits the weights on the training data for every C of the grid and
// keeps those with the best validation accuracy, preferring the lower C on ties.
func (m *Mira) Train(trainingData [][]float64, trainingLabels []int, validationData [][]float64, validationLabels []int) error {
	if len(trainingData) == 0 {
		return errors.New("no training data")
	}
	if len(trainingData) != len(trainingLabels) {
		return errors.Errorf("got %d training samples but %d labels", len(trainingData), len(trainingLabels))
	}
	if len(validationData) == 0 || len(validationData) != len(validationLabels) {
		return errors.Errorf("got %d validation samples and %d labels", len(validationData), len(validationLabels))
	}
	features := len(trainingData[0])
	for _, data := range [][][]float64{trainingData, validationData} {
		for i, datum := range data {
			if len(datum) != features {
				return errors.Errorf("sample %d has %d features, expected %d", i, len(datum), features)
			}
		}
	}
	for _, label := range append(slices.Clone(trainingLabels), validationLabels...) {
		if !slices.Contains(m.Labels, label) {
			return errors.Errorf("unknown label %d", label)
		}
	}

	grid := []float64{m.C}
	if m.AutomaticTuning {
		grid = TUNING_GRID
	}
	m.trainAndTune(trainingData, trainingLabels, validationData, validationLabels, grid, features)
	return nil
}

func (m *Mira) trainAndTune(trainingData [][]float64, trainingLabels []int, validationData [][]float64, validationLabels []int, grid []float64, features int) {
	starting := m.startingWeights(features)
	bestAccuracy := -1.0
	var bestWeights map[int][]float64

	for _, c := range grid {
		m.weights = copyWeights(starting)
		for iteration := 0; iteration < m.MaxIterations; iteration++ {
			log.Debug().Msgf("starting iteration %d with C=%g...", iteration, c)
			for i, f := range trainingData {
				predicted := m.predict(f)
				actual := trainingLabels[i]
				if predicted == actual {
					continue
				}
				norm := floats.Dot(f, f)
				if norm == 0 {
					continue // An empty sample cannot separate labels
				}
				w, wStar := m.weights[predicted], m.weights[actual]
				tau := (floats.Dot(w, f) - floats.Dot(wStar, f) + 1) / (2 * norm)
				tau = min(c, tau)
				floats.AddScaled(w, -tau, f)
				floats.AddScaled(wStar, tau, f)
			}
		}

		accuracy := m.accuracy(validationData, validationLabels)
		log.Debug().Msgf("validation accuracy %.4f with C=%g", accuracy, c)
		// Grid order is not assumed ascending
		if accuracy > bestAccuracy || (accuracy == bestAccuracy && c < m.bestC) {
			bestAccuracy = accuracy
			bestWeights = m.weights
			m.bestC = c
		}
	}
	m.weights = bestWeights
}

func (m *Mira) accuracy(data [][]float64, labels []int) float64 {
	correct := 0
	for i, datum := range data {
		if m.predict(datum) == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(data))
}

// predict returns the first label with the highest score.
func (m *Mira) predict(datum []float64) int {
	scores := make([]float64, len(m.Labels))
	for i, label := range m.Labels {
		if w, ok := m.weights[label]; ok {
			scores[i] = floats.Dot(w, datum)
		}
	}
	return m.Labels[utils.ArgMax(scores)]
}

// Classify returns the predicted label of each datum.
func (m *Mira) Classify(data [][]float64) []int {
	guesses := make([]int, len(data))
	for i, datum := range data {
		guesses[i] = m.predict(datum)
	}
	return guesses
}

// Weights returns a copy of the weights of label, nil before training.
func (m *Mira) Weights(label int) []float64 {
	return slices.Clone(m.weights[label])
}

// BestC returns the C selected by the last training run.
func (m *Mira) BestC() float64 {
	return m.bestC
}

// startingWeights returns the current weights, zero for labels without any.
func (m *Mira) startingWeights(features int) map[int][]float64 {
	weights := make(map[int][]float64, len(m.Labels))
	for _, label := range m.Labels {
		if w, ok := m.weights[label]; ok && len(w) == features {
			weights[label] = slices.Clone(w)
		} else {
			weights[label] = make([]float64, features)
		}
	}
	return weights
}

func copyWeights(weights map[int][]float64) map[int][]float64 {
	result := make(map[int][]float64, len(weights))
	for label, w := range weights {
		result[label] = slices.Clone(w)
	}
	return result
}
