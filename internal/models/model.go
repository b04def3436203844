package models

// Model is the contract every scorer of the 30-slot transaction vector
// satisfies. PredictProba returns fraud probabilities in [0, 1].
type Model interface {
    Fit(X [][]float64, y []int) error
    Predict(X [][]float64) []int
    PredictProba(X [][]float64) []float64
    Name() string
}
