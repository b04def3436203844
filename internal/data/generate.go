package data

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var merchantCategories = []string{"groceries", "restaurants", "fuel", "electronics", "jewelry", "travel", "clothing", "pharmacy", "gambling", "cryptocurrency"}
var merchantNames = []string{"QuickMart", "TechStore", "SkyTravel", "GoldLine", "FuelPoint", "CasaFood", "PixBet", "CoinExpress", "StyleShop", "FarmaPlus"}
var countries = []string{"US", "BR", "GB", "DE", "FR", "PT", "NG", "RO", "RU", "UA"}

// GenerateSyntheticTransactions writes n raw card transactions to a CSV with
// a planted fraud rate. Fraud probability is boosted by the same signals the
// transformer's latent rules encode so trained models have something to find.
func GenerateSyntheticTransactions(n int, fraudRate float64, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"transaction_id", "timestamp", "amount", "merchant_category", "merchant_name", "country", "is_online", "unusual_location", "high_frequency", "card_present", "fraud"}
	if err := w.Write(header); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	baseDate := time.Now().AddDate(0, -6, 0)

	for i := 0; i < n; i++ {
		txID := "T" + strconv.Itoa(1000000+i)

		ts := baseDate.Add(time.Duration(rng.Intn(180*24*3600)) * time.Second)

		amount := rng.ExpFloat64() * 90
		if amount > 5000 {
			amount = 5000
		}

		cat := merchantCategories[rng.Intn(len(merchantCategories))]
		name := merchantNames[rng.Intn(len(merchantNames))]
		country := countries[rng.Intn(len(countries))]

		isOnline := rng.Float64() < 0.4
		unusual := rng.Float64() < 0.05
		highFreq := rng.Float64() < 0.08
		cardPresent := !isOnline && rng.Float64() < 0.9

		score := 0.0
		if isOnline {
			score += 0.05
		}
		if amount > 200 {
			score += 0.1
		}
		switch cat {
		case "jewelry", "electronics", "travel", "gambling", "cryptocurrency":
			score += 0.1
		}
		if unusual {
			score += 0.25
		}
		if highFreq {
			score += 0.2
		}
		if !cardPresent {
			score += 0.05
		}
		switch country {
		case "NG", "RO", "RU", "UA":
			score += 0.15
		}

		fraud := 0
		if rng.Float64() < fraudRate+score*0.5 {
			fraud = 1
		}

		rec := []string{
			txID,
			ts.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(amount, 'f', 2, 64),
			cat,
			name,
			country,
			strconv.FormatBool(isOnline),
			strconv.FormatBool(unusual),
			strconv.FormatBool(highFreq),
			strconv.FormatBool(cardPresent),
			strconv.Itoa(fraud),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
