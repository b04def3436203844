package features

import (
    "hash/fnv"
    "math/rand"
    "strings"

    "txfeatures/internal/data"
)

// latentSize is the number of approximated latent components (v1..v28).
const latentSize = 28

// Merchant categories and countries treated as elevated fraud signals.
// Categories match as case-insensitive substrings, countries exactly.
var highRiskCategories = []string{"jewelry", "electronics", "travel", "gambling", "cryptocurrency"}
var highRiskCountries = map[string]bool{"NG": true, "RO": true, "RU": true, "UA": true}

// fillerStd is the standard deviation of the pseudo-random filler draws.
const fillerStd = 0.3

// synthesizeLatent approximates the 28 latent components from transaction
// signals. The first seven follow a fixed rule table (negative values lean
// toward fraud); the rest are filler drawn N(0, fillerStd) from a generator
// seeded by the transaction's canonical form, so identical transactions
// always produce identical vectors. The generator is scoped to this call:
// no shared state, safe under concurrency.
func synthesizeLatent(tx data.Transaction) []float64 {
    v := make([]float64, latentSize)

    if tx.IsOnline { v[0] = -1.2 } else { v[0] = 0.5 }
    if tx.Amount > 200 { v[1] = -0.5 } else { v[1] = 0.3 }
    if isHighRiskCategory(tx.MerchantCategory) { v[2] = -0.7 } else { v[2] = 0.2 }
    if tx.UnusualLocation { v[3] = -1.0 } else { v[3] = 0.1 }
    if tx.HighFrequency { v[4] = -0.8 } else { v[4] = 0.2 }
    if tx.CardPresent { v[5] = 0.4 } else { v[5] = -0.6 }
    if highRiskCountries[tx.Country] { v[6] = -0.9 } else { v[6] = 0.3 }

    rng := rand.New(rand.NewSource(fillerSeed(tx)))
    for i := 7; i < latentSize; i++ {
        v[i] = rng.NormFloat64() * fillerStd
    }
    return v
}

func isHighRiskCategory(category string) bool {
    c := strings.ToLower(category)
    for _, hr := range highRiskCategories {
        if strings.Contains(c, hr) {
            return true
        }
    }
    return false
}

// fillerSeed hashes the canonical transaction form and reduces it into a
// 32-bit seed range.
func fillerSeed(tx data.Transaction) int64 {
    h := fnv.New64a()
    h.Write([]byte(tx.Canonical()))
    return int64(h.Sum64() % (1 << 32))
}
