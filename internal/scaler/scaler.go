package scaler

import (
    "encoding/gob"
    "errors"
    "math"
    "os"
    "path/filepath"
)

// Scaler is a fitted standard scaler over the two raw columns the model
// cares about: time-of-day seconds and amount. Persisted as a gob artifact.
type Scaler struct {
    TimeMean   float64
    TimeStd    float64
    AmountMean float64
    AmountStd  float64
    N          int
}

// Fit computes per-column mean and standard deviation from raw samples.
func Fit(times, amounts []float64) (*Scaler, error) {
    if len(times) == 0 || len(times) != len(amounts) {
        return nil, errors.New("scaler: need equal-length non-empty samples")
    }
    s := &Scaler{N: len(times)}
    s.TimeMean, s.TimeStd = meanStd(times)
    s.AmountMean, s.AmountStd = meanStd(amounts)
    return s, nil
}

// Apply z-scores a raw (time, amount) pair. Degenerate columns map to 0.
func (s *Scaler) Apply(timeFeature, amount float64) (float64, float64) {
    return zscore(timeFeature, s.TimeMean, s.TimeStd), zscore(amount, s.AmountMean, s.AmountStd)
}

// Save writes the scaler as a gob artifact, creating parent directories.
func (s *Scaler) Save(path string) error {
    if dir := filepath.Dir(path); dir != "." {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return err
        }
    }
    f, err := os.Create(path)
    if err != nil {
        return err
    }
    defer f.Close()
    return gob.NewEncoder(f).Encode(s)
}

// Load reads a gob scaler artifact. A missing or corrupt file returns an
// error the caller is expected to treat as "no scaler".
func Load(path string) (*Scaler, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()
    var s Scaler
    if err := gob.NewDecoder(f).Decode(&s); err != nil {
        return nil, err
    }
    if s.N == 0 {
        return nil, errors.New("scaler: artifact was never fitted")
    }
    return &s, nil
}

func meanStd(xs []float64) (mean, std float64) {
    for _, x := range xs {
        mean += x
    }
    mean /= float64(len(xs))
    for _, x := range xs {
        d := x - mean
        std += d * d
    }
    std = math.Sqrt(std / float64(len(xs)))
    return
}

func zscore(v, mean, std float64) float64 {
    if std == 0 {
        return 0
    }
    return (v - mean) / std
}
