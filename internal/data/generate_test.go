package data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestGenerateSyntheticTransactions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "synthetic.csv")
	if err := GenerateSyntheticTransactions(500, 0.05, out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 501 {
		t.Fatalf("rows = %d, want header + 500", len(rows))
	}
	if rows[0][0] != "transaction_id" || rows[0][10] != "fraud" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	fraud := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) != 11 {
			t.Fatalf("row %d has %d columns", i, len(row))
		}
		// Every generated row must survive the boundary parser cleanly.
		isOnline, _ := strconv.ParseBool(row[6])
		tx, warns := FromRecord(Record{
			"timestamp":         row[1],
			"amount":            row[2],
			"merchant_category": row[3],
			"country":           row[5],
			"is_online":         isOnline,
		})
		if len(warns) != 0 {
			t.Fatalf("row %d produced warnings: %v", i, warns)
		}
		if !tx.HasTimestamp {
			t.Fatalf("row %d timestamp did not parse: %q", i, row[1])
		}
		if tx.Amount < 0 {
			t.Fatalf("row %d negative amount %v", i, tx.Amount)
		}
		if l, _ := strconv.Atoi(row[10]); l == 1 {
			fraud++
		}
	}
	if fraud == 0 {
		t.Error("expected at least one planted fraud row in 500 samples")
	}
}
