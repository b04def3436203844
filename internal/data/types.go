package data

import (
    "fmt"
    "strconv"
    "strings"
    "time"
)

// Record is the open, non-strict input shape: whatever keys the upstream
// gateway attached to the transaction. Unrecognized keys are ignored.
type Record map[string]any

// Transaction holds the recognized fields of a raw transaction after
// lenient coercion. Every field has a documented default so downstream
// code never sees a missing value.
type Transaction struct {
    Amount           float64 `json:"amount"`
    TimeOfDaySeconds int     `json:"time_of_day_seconds"`
    HasTimestamp     bool    `json:"has_timestamp"`
    MerchantCategory string  `json:"merchant_category"`
    MerchantName     string  `json:"merchant_name"`
    Country          string  `json:"country"`
    IsOnline         bool    `json:"is_online"`
    UnusualLocation  bool    `json:"unusual_location"`
    HighFrequency    bool    `json:"high_frequency"`
    CardPresent      bool    `json:"card_present"`
}

const (
    tsLayoutISO   = "2006-01-02T15:04:05"
    tsLayoutSpace = "2006-01-02 15:04:05"
)

// FromRecord coerces an open record into a Transaction. It never fails:
// unparseable values degrade to their documented defaults and each
// degradation is reported as a warning string.
func FromRecord(rec Record) (Transaction, []string) {
    tx := Transaction{CardPresent: true}
    var warns []string

    if v, ok := rec["amount"]; ok {
        amt, err := toFloat(v)
        if err != nil {
            warns = append(warns, fmt.Sprintf("invalid amount %v, defaulting to 0", v))
        } else {
            tx.Amount = amt
        }
    }

    if v, ok := rec["timestamp"]; ok {
        secs, err := timeOfDay(v)
        if err != nil {
            warns = append(warns, fmt.Sprintf("could not parse timestamp: %v, defaulting to 0", err))
        } else {
            tx.TimeOfDaySeconds = secs
            tx.HasTimestamp = true
        }
    }

    tx.MerchantCategory = toString(rec["merchant_category"])
    tx.MerchantName = toString(rec["merchant_name"])
    tx.Country = toString(rec["country"])

    tx.IsOnline = toBool(rec["is_online"], false)
    tx.UnusualLocation = toBool(rec["unusual_location"], false)
    tx.HighFrequency = toBool(rec["high_frequency"], false)
    tx.CardPresent = toBool(rec["card_present"], true)

    return tx, warns
}

// Canonical is the stable textual form of the recognized fields, used to
// seed the filler generator. Only recognized fields participate, so two
// records differing in unknown keys canonicalize identically.
func (t Transaction) Canonical() string {
    return fmt.Sprintf("amount=%g|time=%d|has_time=%t|category=%s|merchant=%s|country=%s|online=%t|unusual=%t|freq=%t|present=%t",
        t.Amount, t.TimeOfDaySeconds, t.HasTimestamp,
        t.MerchantCategory, t.MerchantName, t.Country,
        t.IsOnline, t.UnusualLocation, t.HighFrequency, t.CardPresent)
}

func toFloat(v any) (float64, error) {
    switch x := v.(type) {
    case float64:
        return x, nil
    case float32:
        return float64(x), nil
    case int:
        return float64(x), nil
    case int64:
        return float64(x), nil
    case string:
        return strconv.ParseFloat(strings.TrimSpace(x), 64)
    case nil:
        return 0, fmt.Errorf("nil value")
    default:
        return 0, fmt.Errorf("unsupported type %T", v)
    }
}

func toString(v any) string {
    if v == nil { return "" }
    if s, ok := v.(string); ok { return s }
    return fmt.Sprintf("%v", v)
}

func toBool(v any, def bool) bool {
    if b, ok := v.(bool); ok { return b }
    return def
}

// timeOfDay resolves a timestamp value of unspecified type into seconds
// since midnight (0..86399). String timestamps keep their own wall clock;
// numeric epochs go through local time.
func timeOfDay(v any) (int, error) {
    var ts time.Time
    switch x := v.(type) {
    case string:
        var err error
        ts, err = parseTimestamp(x)
        if err != nil { return 0, err }
    case float64:
        ts = time.Unix(int64(x), 0)
    case int:
        ts = time.Unix(int64(x), 0)
    case int64:
        ts = time.Unix(x, 0)
    default:
        return 0, fmt.Errorf("unsupported timestamp type %T", v)
    }
    h, m, s := ts.Clock()
    return h*3600 + m*60 + s, nil
}

func parseTimestamp(s string) (time.Time, error) {
    s = strings.TrimSpace(s)
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, nil
    }
    if t, err := time.Parse(tsLayoutISO, s); err == nil {
        return t, nil
    }
    if t, err := time.Parse(tsLayoutSpace, s); err == nil {
        return t, nil
    }
    return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
