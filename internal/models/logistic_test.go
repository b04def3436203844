package models

import "testing"

func TestLogisticRegressionSeparable(t *testing.T) {
	// One informative feature, clearly separated classes.
	var X [][]float64
	var y []int
	for i := 0; i < 50; i++ {
		X = append(X, []float64{-2.0 - float64(i%5)*0.1})
		y = append(y, 0)
		X = append(X, []float64{2.0 + float64(i%5)*0.1})
		y = append(y, 1)
	}

	lr := NewLogisticRegression()
	lr.Epochs = 500
	lr.LearningRate = 0.5
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}

	preds := lr.Predict(X)
	wrong := 0
	for i := range preds {
		if preds[i] != y[i] {
			wrong++
		}
	}
	if wrong > 0 {
		t.Errorf("%d/%d misclassified on separable data", wrong, len(y))
	}

	for _, p := range lr.PredictProba(X) {
		if p <= 0 || p >= 1 {
			t.Fatalf("probability out of range: %v", p)
		}
	}
}

func TestLogisticRegressionRejectsBadInput(t *testing.T) {
	lr := NewLogisticRegression()
	if err := lr.Fit(nil, nil); err == nil {
		t.Error("empty training set should fail")
	}
	if err := lr.Fit([][]float64{{1}}, []int{0, 1}); err == nil {
		t.Error("mismatched lengths should fail")
	}
}

func TestLogisticRegressionImplementsModel(t *testing.T) {
	var _ Model = NewLogisticRegression()
}
