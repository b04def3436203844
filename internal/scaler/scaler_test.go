package scaler

import (
	"math"
	"path/filepath"
	"testing"
)

func TestFitAndApply(t *testing.T) {
	s, err := Fit([]float64{0, 10, 20}, []float64{100, 200, 300})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if s.TimeMean != 10 || s.AmountMean != 200 {
		t.Errorf("means = %v/%v, want 10/200", s.TimeMean, s.AmountMean)
	}
	wantStd := math.Sqrt(200.0 / 3.0)
	if math.Abs(s.TimeStd-wantStd) > 1e-9 {
		t.Errorf("time std = %v, want %v", s.TimeStd, wantStd)
	}

	zt, za := s.Apply(10, 200)
	if zt != 0 || za != 0 {
		t.Errorf("mean input should z-score to 0, got %v/%v", zt, za)
	}
	zt, _ = s.Apply(10+s.TimeStd, 200)
	if math.Abs(zt-1) > 1e-9 {
		t.Errorf("one std above mean should z-score to 1, got %v", zt)
	}
}

func TestApplyZeroStdGuard(t *testing.T) {
	s, err := Fit([]float64{5, 5, 5}, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if s.TimeStd != 0 {
		t.Fatalf("constant column should have zero std, got %v", s.TimeStd)
	}
	zt, _ := s.Apply(123, 2)
	if zt != 0 {
		t.Errorf("zero-std column should map to 0, got %v", zt)
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	if _, err := Fit(nil, nil); err == nil {
		t.Error("empty samples should fail")
	}
	if _, err := Fit([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("mismatched lengths should fail")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s, err := Fit([]float64{0, 43200, 86399}, []float64{10, 90, 500})
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model", "scaler.gob")
	if err := s.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *s {
		t.Errorf("roundtrip mismatch: %+v vs %+v", got, s)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.gob")); err == nil {
		t.Error("missing artifact should return an error")
	}
}
