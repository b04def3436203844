package features

// Limitations describes how much to trust the heuristic approximation.
type Limitations struct {
    EstimatedAccuracy string   `json:"estimated_accuracy"`
    Confidence        float64  `json:"confidence"`
    Limitations       []string `json:"limitations"`
    Recommendation    string   `json:"recommendation"`
}

// GetLimitations returns the fixed confidence descriptor for the
// transformation. The latent components were originally a privacy-preserving
// projection whose matrix is unknown; everything here is an approximation
// and callers should treat scores accordingly.
func (t *Transformer) GetLimitations() Limitations {
    return Limitations{
        EstimatedAccuracy: "low to medium",
        Confidence:        0.4,
        Limitations: []string{
            "PCA transformation matrix is unknown",
            "Feature distributions may not match training data",
            "Heuristic rules are approximations",
        },
        Recommendation: "Consider retraining the model on raw transaction features for production use",
    }
}
