package main

import (
	"encoding/csv"
	"encoding/gob"
	"flag"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.uber.org/zap"

	"txfeatures/internal/data"
	"txfeatures/internal/features"
	"txfeatures/internal/models"
	"txfeatures/internal/scaler"
	"txfeatures/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	regen := flag.Bool("regen", true, "Regenerate the synthetic dataset")
	n := flag.Int("n", 100000, "Number of synthetic transactions")
	fraudRate := flag.Float64("fraud_rate", 0.05, "Base fraud rate for the synthetic set")
	dataPath := flag.String("data", "data/synthetic.csv", "Raw transactions CSV")
	scalerPath := flag.String("scaler_out", filepath.Join("model", "scaler.gob"), "Scaler artifact path")
	modelPath := flag.String("model_out", filepath.Join("models", "logreg_model.gob"), "Model artifact path")
	rocImg := flag.String("roc_out", filepath.Join("model", "roc.png"), "ROC curve PNG")
	lr := flag.Float64("lr", 0.05, "Learning rate")
	epochs := flag.Int("epochs", 50, "Training epochs")
	flag.Parse()

	if *regen {
		logger.Info("generating synthetic dataset", zap.Int("n", *n), zap.String("out", *dataPath))
		if err := data.GenerateSyntheticTransactions(*n, *fraudRate, *dataPath); err != nil {
			logger.Fatal("failed to generate dataset", zap.Error(err))
		}
	}

	txs, labels, err := loadTransactions(*dataPath)
	if err != nil {
		logger.Fatal("failed to load CSV", zap.Error(err))
	}
	if len(txs) < 2 {
		logger.Fatal("dataset too small")
	}

	// Fit the scaler on raw time/amount, then transform with it active so
	// the boundary slots stay raw and get scaled explicitly afterwards —
	// the same handoff the API performs at scoring time.
	times := make([]float64, len(txs))
	amounts := make([]float64, len(txs))
	for i, tx := range txs {
		times[i] = float64(tx.TimeOfDaySeconds)
		amounts[i] = tx.Amount
	}
	sc, err := scaler.Fit(times, amounts)
	if err != nil {
		logger.Fatal("failed to fit scaler", zap.Error(err))
	}
	if err := sc.Save(*scalerPath); err != nil {
		logger.Fatal("failed to save scaler", zap.Error(err))
	}
	logger.Info("scaler fitted",
		zap.String("path", *scalerPath),
		zap.Float64("time_mean", sc.TimeMean),
		zap.Float64("amount_mean", sc.AmountMean),
	)

	tr := features.NewWithScaler(sc, logger)
	X := make([][]float64, len(txs))
	for i, tx := range txs {
		vec := tr.TransformTransaction(tx).Vector
		vec[0], vec[features.VectorSize-1] = sc.Apply(vec[0], vec[features.VectorSize-1])
		X[i] = vec
	}

	split := int(0.8 * float64(len(X)))
	Xtrain, ytrain := X[:split], labels[:split]
	Xtest, ytest := X[split:], labels[split:]

	mdl := models.NewLogisticRegression()
	mdl.LearningRate = *lr
	mdl.Epochs = *epochs
	if err := mdl.Fit(Xtrain, ytrain); err != nil {
		logger.Fatal("failed to train model", zap.Error(err))
	}

	proba := mdl.PredictProba(Xtest)
	acc := accuracy(ytest, probaToPred(proba, 0.5))
	prec, rec, f1 := prf1(ytest, proba, 0.5)
	roc := rocAUC(ytest, proba)
	logger.Info("holdout metrics",
		zap.String("model", mdl.Name()),
		zap.Float64("accuracy", acc),
		zap.Float64("precision", prec),
		zap.Float64("recall", rec),
		zap.Float64("f1", f1),
		zap.Float64("roc_auc", roc),
	)

	if err := os.MkdirAll(filepath.Dir(*modelPath), 0o755); err != nil {
		logger.Fatal("mkdir models", zap.Error(err))
	}
	mf, err := os.Create(*modelPath)
	if err != nil {
		logger.Fatal("create model artifact", zap.Error(err))
	}
	defer mf.Close()
	if err := gob.NewEncoder(mf).Encode(mdl); err != nil {
		logger.Fatal("encode model artifact", zap.Error(err))
	}
	logger.Info("model saved", zap.String("path", *modelPath))

	if err := plotROC(*rocImg, ytest, proba); err != nil {
		logger.Warn("failed to save ROC PNG", zap.Error(err))
	} else {
		logger.Info("ROC curve saved", zap.String("png", *rocImg))
	}
}

// loadTransactions reads the synthetic CSV into coerced transactions plus
// fraud labels. Row layout matches data.GenerateSyntheticTransactions.
func loadTransactions(path string) ([]data.Transaction, []int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	txs := make([]data.Transaction, 0, len(rows)-1)
	labels := make([]int, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 11 {
			continue
		}
		isOnline, _ := strconv.ParseBool(row[6])
		unusual, _ := strconv.ParseBool(row[7])
		highFreq, _ := strconv.ParseBool(row[8])
		cardPresent, _ := strconv.ParseBool(row[9])
		tx, _ := data.FromRecord(data.Record{
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
		fraud, _ := strconv.Atoi(row[10])
		txs = append(txs, tx)
		labels = append(labels, fraud)
	}
	return txs, labels, nil
}

func accuracy(y, p []int) float64 {
	if len(y) == 0 {
		return 0
	}
	c := 0
	for i := range y {
		if y[i] == p[i] {
			c++
		}
	}
	return float64(c) / float64(len(y))
}

func probaToPred(ps []float64, thr float64) []int {
	out := make([]int, len(ps))
	for i := range ps {
		if ps[i] >= thr {
			out[i] = 1
		}
	}
	return out
}

func prf1(y []int, ps []float64, thr float64) (precision, recall, f1 float64) {
	var tp, fp, fn int
	for i := range y {
		pred := 0
		if ps[i] >= thr {
			pred = 1
		}
		switch {
		case pred == 1 && y[i] == 1:
			tp++
		case pred == 1 && y[i] == 0:
			fp++
		case pred == 0 && y[i] == 1:
			fn++
		}
	}
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return
}

func rocAUC(y []int, ps []float64) float64 {
	pts := rocPoints(y, ps)
	var auc float64
	for i := 1; i < len(pts); i++ {
		auc += (pts[i].X - pts[i-1].X) * (pts[i].Y + pts[i-1].Y) / 2.0
	}
	return auc
}

func rocPoints(y []int, ps []float64) plotter.XYs {
	type pair struct {
		s float64
		y int
	}
	n := len(y)
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = pair{ps[i], y[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].s > pairs[j].s })
	var pos, neg int
	for _, p := range pairs {
		if p.y == 1 {
			pos++
		} else {
			neg++
		}
	}
	pts := plotter.XYs{{X: 0, Y: 0}}
	if pos == 0 || neg == 0 {
		return pts
	}
	tp, fp := 0, 0
	prevS := math.Inf(1)
	for i := 0; i < n; i++ {
		if pairs[i].s != prevS {
			pts = append(pts, plotter.XY{X: float64(fp) / float64(neg), Y: float64(tp) / float64(pos)})
			prevS = pairs[i].s
		}
		if pairs[i].y == 1 {
			tp++
		} else {
			fp++
		}
	}
	pts = append(pts, plotter.XY{X: 1, Y: 1})
	return pts
}

func plotROC(path string, y []int, ps []float64) error {
	p := plot.New()
	p.Title.Text = "ROC (holdout)"
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	if err := plotutil.AddLinePoints(p, "LogisticRegression", rocPoints(y, ps)); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
