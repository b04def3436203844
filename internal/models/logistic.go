package models

import (
    "errors"
    "math"
)

// LogisticRegression is a gob-serializable linear scorer over the 30-slot
// transaction vector. Small enough to train in-process on the synthetic set.
type LogisticRegression struct {
    Weights      []float64
    Bias         float64
    LearningRate float64
    Epochs       int
}

func NewLogisticRegression() *LogisticRegression {
    return &LogisticRegression{LearningRate: 0.05, Epochs: 50}
}

func (lr *LogisticRegression) Name() string { return "LogisticRegression" }

func (lr *LogisticRegression) Fit(X [][]float64, y []int) error {
    if len(X) == 0 || len(X) != len(y) {
        return errors.New("logistic: need equal-length non-empty X and y")
    }
    dim := len(X[0])
    lr.Weights = make([]float64, dim)
    lr.Bias = 0
    n := float64(len(X))

    for epoch := 0; epoch < lr.Epochs; epoch++ {
        gradW := make([]float64, dim)
        gradB := 0.0
        for i := range X {
            p := lr.probaOne(X[i])
            diff := p - float64(y[i])
            for j := 0; j < dim; j++ {
                gradW[j] += diff * X[i][j]
            }
            gradB += diff
        }
        for j := 0; j < dim; j++ {
            lr.Weights[j] -= lr.LearningRate * gradW[j] / n
        }
        lr.Bias -= lr.LearningRate * gradB / n
    }
    return nil
}

func (lr *LogisticRegression) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i := range X {
        if lr.probaOne(X[i]) >= 0.5 { out[i] = 1 }
    }
    return out
}

func (lr *LogisticRegression) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i := range X { out[i] = lr.probaOne(X[i]) }
    return out
}

func (lr *LogisticRegression) probaOne(x []float64) float64 {
    z := lr.Bias
    for j := range lr.Weights {
        if j < len(x) {
            z += lr.Weights[j] * x[j]
        }
    }
    return 1.0 / (1.0 + math.Exp(-z))
}
