package features

import (
    "path/filepath"

    "go.uber.org/zap"

    "txfeatures/internal/data"
    "txfeatures/internal/scaler"
)

// VectorSize is the scoring model's input contract: one time feature,
// 28 latent features and one amount feature, in that order.
const VectorSize = 30

// Reference statistics from the original training set, used for z-score
// normalization whenever no fitted scaler artifact is available.
const (
    TimeMean   = 94813.86
    TimeStd    = 47488.15
    AmountMean = 88.35
    AmountStd  = 250.12
)

// DefaultScalerPath is where the transformer looks for a fitted scaler
// artifact at construction time.
var DefaultScalerPath = filepath.Join("model", "scaler.gob")

// Result carries the produced vector together with every degradation that
// happened along the way. Transform never fails; callers who care about
// data quality inspect Warnings.
type Result struct {
    Vector   []float64 `json:"vector"`
    Warnings []string  `json:"warnings,omitempty"`
}

// Transformer converts raw transactions into the 30-slot vector. Immutable
// after construction, safe to share across goroutines.
type Transformer struct {
    scaler *scaler.Scaler
    logger *zap.Logger
}

// New builds a Transformer, attempting a one-time scaler load from
// DefaultScalerPath. A missing or corrupt artifact is a normal state: the
// transformer logs a notice and falls back to the reference statistics.
// Construction never fails.
func New(logger *zap.Logger) *Transformer {
    if logger == nil {
        logger = zap.NewNop()
    }
    t := &Transformer{logger: logger}
    s, err := scaler.Load(DefaultScalerPath)
    if err != nil {
        logger.Info("scaler not found, using reference statistics", zap.String("path", DefaultScalerPath), zap.Error(err))
        return t
    }
    t.scaler = s
    logger.Info("scaler loaded", zap.String("path", DefaultScalerPath))
    return t
}

// NewWithScaler builds a Transformer around an already-loaded scaler.
// Pass nil to force the reference-statistics path.
func NewWithScaler(s *scaler.Scaler, logger *zap.Logger) *Transformer {
    if logger == nil {
        logger = zap.NewNop()
    }
    return &Transformer{scaler: s, logger: logger}
}

// HasScaler reports whether a fitted scaler is active. When true, Transform
// leaves the time and amount slots raw and normalization is the caller's
// step (see Scaler.Apply).
func (t *Transformer) HasScaler() bool { return t.scaler != nil }

// Scaler returns the active scaler, or nil.
func (t *Transformer) Scaler() *scaler.Scaler { return t.scaler }

// Transform converts an open record into the 30-slot vector. It never
// returns an error: malformed fields degrade to documented defaults and
// show up in Result.Warnings.
func (t *Transformer) Transform(rec data.Record) Result {
    tx, warns := data.FromRecord(rec)
    res := t.TransformTransaction(tx)
    res.Warnings = append(warns, res.Warnings...)
    for _, w := range res.Warnings {
        t.logger.Warn("transform degradation", zap.String("warning", w))
    }
    return res
}

// TransformTransaction converts an already-coerced transaction.
func (t *Transformer) TransformTransaction(tx data.Transaction) Result {
    timeFeature := float64(tx.TimeOfDaySeconds)
    amount := tx.Amount

    if t.scaler == nil {
        timeFeature = zscore(timeFeature, TimeMean, TimeStd)
        amount = zscore(amount, AmountMean, AmountStd)
    }
    // With a scaler loaded, time and amount pass through raw: the scaler
    // owns their normalization and the caller applies it before scoring.

    vec := make([]float64, 0, VectorSize)
    vec = append(vec, timeFeature)
    vec = append(vec, synthesizeLatent(tx)...)
    vec = append(vec, amount)
    return Result{Vector: vec}
}

func zscore(v, mean, std float64) float64 {
    if std == 0 {
        return 0
    }
    return (v - mean) / std
}
