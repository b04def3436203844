package main

import (
    "encoding/gob"
    "net/http"
    "os"
    "path/filepath"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "txfeatures/internal/data"
    "txfeatures/internal/features"
    "txfeatures/internal/models"
    "txfeatures/pkg/utils"
)

// ruleModel is the fallback scorer used when no trained artifact exists.
// It reads the latent slots directly: negative rule values lean fraud.
type ruleModel struct{}

func (r *ruleModel) Fit(X [][]float64, y []int) error { return nil }
func (r *ruleModel) Predict(X [][]float64) []int {
    out := make([]int, len(X))
    for i, v := range X {
        if r.score(v) >= 0.5 { out[i] = 1 }
    }
    return out
}
func (r *ruleModel) PredictProba(X [][]float64) []float64 {
    out := make([]float64, len(X))
    for i, v := range X { out[i] = r.score(v) }
    return out
}
func (r *ruleModel) Name() string { return "RuleModel" }
func (r *ruleModel) score(v []float64) float64 {
    if len(v) != features.VectorSize { return 0 }
    s := 0.05
    if v[1] < 0 { s += 0.2 }  // online
    if v[2] < 0 { s += 0.1 }  // large amount
    if v[3] < 0 { s += 0.1 }  // high-risk category
    if v[4] < 0 { s += 0.25 } // unusual location
    if v[5] < 0 { s += 0.2 }  // high frequency
    if v[6] < 0 { s += 0.05 } // card not present
    if v[7] < 0 { s += 0.15 } // high-risk country
    if s > 0.95 { s = 0.95 }
    return s
}

var transformer *features.Transformer
var model models.Model

func main() {
    logger := utils.Logger()
    defer logger.Sync()

    transformer = features.New(logger)

    path := filepath.Join("models", "logreg_model.gob")
    if f, err := os.Open(path); err == nil {
        defer f.Close()
        dec := gob.NewDecoder(f)
        var lr models.LogisticRegression
        if err := dec.Decode(&lr); err == nil && len(lr.Weights) == features.VectorSize {
            model = &lr
        }
    }
    if model == nil {
        model = &ruleModel{}
        logger.Info("no trained model artifact, using rule fallback")
    }
    logger.Info("api ready", zap.String("model", model.Name()), zap.Bool("scaler", transformer.HasScaler()))

    r := gin.Default()

    r.GET("/limitations", handleLimitations)

    api := r.Group("/")
    api.Use(apiKeyMiddleware)
    api.POST("/transform", handleTransform)
    api.POST("/score", handleScore)
    api.POST("/batch", handleBatch)

    port := os.Getenv("PORT")
    if port == "" { port = "8080" }
    r.Run(":" + port)
}

func apiKeyMiddleware(c *gin.Context) {
    key := os.Getenv("API_KEY")
    if key == "" { c.Next(); return }
    got := c.GetHeader("X-API-Key")
    if got != key { c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }
    c.Next()
}

func handleTransform(c *gin.Context) {
    var rec data.Record
    if err := c.BindJSON(&rec); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return
    }
    res := transformer.Transform(rec)
    c.JSON(http.StatusOK, gin.H{
        "vector":   res.Vector,
        "warnings": res.Warnings,
        "scaled":   !transformer.HasScaler(),
    })
}

// scoreOne runs the full pipeline for one record: transform, apply the
// scaler to the boundary slots when one is loaded, then score.
func scoreOne(rec data.Record) gin.H {
    res := transformer.Transform(rec)
    vec := res.Vector
    if s := transformer.Scaler(); s != nil {
        vec[0], vec[features.VectorSize-1] = s.Apply(vec[0], vec[features.VectorSize-1])
    }
    p := model.PredictProba([][]float64{vec})[0]
    return gin.H{
        "score":    p,
        "risk":     riskBand(p),
        "model":    model.Name(),
        "warnings": res.Warnings,
    }
}

func handleScore(c *gin.Context) {
    var rec data.Record
    if err := c.BindJSON(&rec); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return
    }
    c.JSON(http.StatusOK, scoreOne(rec))
}

func handleBatch(c *gin.Context) {
    var recs []data.Record
    if err := c.BindJSON(&recs); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"}); return
    }
    out := make([]gin.H, len(recs))
    for i := range recs {
        out[i] = scoreOne(recs[i])
    }
    c.JSON(http.StatusOK, out)
}

func handleLimitations(c *gin.Context) {
    c.JSON(http.StatusOK, transformer.GetLimitations())
}

func riskBand(p float64) string {
    switch {
    case p >= 0.95:
        return "high"
    case p >= 0.7:
        return "medium"
    case p >= 0.5:
        return "low"
    default:
        return "very_low"
    }
}
