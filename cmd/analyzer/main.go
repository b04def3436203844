package main

import (
    "encoding/csv"
    "flag"
    "fmt"
    "math"
    "os"
    "path/filepath"
    "strconv"

    "gonum.org/v1/plot"
    "gonum.org/v1/plot/plotter"
    "gonum.org/v1/plot/plotutil"
    "gonum.org/v1/plot/vg"

    "txfeatures/internal/data"
    "txfeatures/internal/features"
)

// Reports per-slot mean and standard deviation of transformed vectors over
// a raw-transaction CSV, to eyeball how far the heuristic output drifts
// from the zero-centered distribution the model was trained on.
func main() {
    dataPath := flag.String("data", "data/synthetic.csv", "Raw transactions CSV")
    outImg := flag.String("out_img", filepath.Join("model", "slot_stats.png"), "Per-slot stats PNG")
    flag.Parse()

    vectors := loadVectors(*dataPath)
    if len(vectors) == 0 { fmt.Println("empty dataset"); return }

    means := make([]float64, features.VectorSize)
    stds := make([]float64, features.VectorSize)
    for _, v := range vectors {
        for j := range v { means[j] += v[j] }
    }
    for j := range means { means[j] /= float64(len(vectors)) }
    for _, v := range vectors {
        for j := range v {
            d := v[j] - means[j]
            stds[j] += d * d
        }
    }
    for j := range stds { stds[j] = math.Sqrt(stds[j] / float64(len(vectors))) }

    for j := 0; j < features.VectorSize; j++ {
        fmt.Printf("slot %2d | mean=%+.4f | std=%.4f\n", j, means[j], stds[j])
    }

    if err := plotSlots(*outImg, means, stds); err != nil {
        fmt.Println("failed to save PNG:", err)
    } else {
        fmt.Println("plot saved to:", *outImg)
    }
}

func loadVectors(path string) [][]float64 {
    f, err := os.Open(path)
    if err != nil { fmt.Println("failed to open CSV:", err); return nil }
    defer f.Close()
    rows, err := csv.NewReader(f).ReadAll()
    if err != nil || len(rows) < 2 { fmt.Println("invalid CSV"); return nil }

    tr := features.NewWithScaler(nil, nil)
    out := make([][]float64, 0, len(rows)-1)
    for i := 1; i < len(rows); i++ {
        row := rows[i]
        if len(row) < 10 { continue }
        isOnline, _ := strconv.ParseBool(row[6])
        unusual, _ := strconv.ParseBool(row[7])
        highFreq, _ := strconv.ParseBool(row[8])
        cardPresent, _ := strconv.ParseBool(row[9])
        res := tr.Transform(data.Record{
            "timestamp":         row[1],
            "amount":            row[2],
            "merchant_category": row[3],
            "merchant_name":     row[4],
            "country":           row[5],
            "is_online":         isOnline,
            "unusual_location":  unusual,
            "high_frequency":    highFreq,
            "card_present":      cardPresent,
        })
        out = append(out, res.Vector)
    }
    return out
}

func plotSlots(path string, means, stds []float64) error {
    p := plot.New()
    p.Title.Text = "Vector slot statistics"
    p.X.Label.Text = "Slot index"
    p.Y.Label.Text = "Value"

    toXY := func(ys []float64) plotter.XYs {
        pts := make(plotter.XYs, len(ys))
        for i := range ys { pts[i].X = float64(i); pts[i].Y = ys[i] }
        return pts
    }
    if err := plotutil.AddLinePoints(p, "Mean", toXY(means), "Std", toXY(stds)); err != nil { return err }
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { return err }
    return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
