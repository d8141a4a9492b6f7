package monarch

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	records := []HoldingRecord{
		{
			AccountID:       "acc-brokerage",
			AccountName:     "Brokerage",
			AccountMask:     "4321",
			InstitutionName: "Fidelity",
			HoldingName:     "Apple Inc",
			Ticker:          "AAPL",
			Type:            "equity",
			TypeDisplay:     "Stocks",
			Quantity:        d("40"),
			ClosingPrice:    d("232.5"),
			Value:           d("9300"),
			SecurityID:      "sec-aapl",
			SecurityName:    "Apple Inc",
			SecurityTicker:  "AAPL",
			CurrentPrice:    d("234.1"),
			PriceUpdated:    "2025-08-22T20:00:00+00:00",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("cannot re-read CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got, want := strings.Join(rows[0], ","), strings.Join(Headers(), ","); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
	if rows[1][5] != "AAPL" || rows[1][10] != "9300" {
		t.Errorf("row = %v", rows[1])
	}
}

func TestWriteCSV_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("cannot re-read CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want just the header", len(rows))
	}
}

func TestSaveRaw_RoundTrip(t *testing.T) {
	src, err := os.ReadFile("testdata/portfolio.json")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := SaveRaw(path, json.RawMessage(src)); err != nil {
		t.Fatalf("SaveRaw() error = %v", err)
	}

	// The persisted file must be pretty-printed and decode to the same
	// holdings.
	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(saved, []byte("\n    ")) {
		t.Error("saved JSON is not indented")
	}

	resp, err := LoadResponse(path)
	if err != nil {
		t.Fatalf("LoadResponse() error = %v", err)
	}
	if got := len(Flatten(resp)); got != 3 {
		t.Errorf("round-tripped portfolio has %d holdings, want 3", got)
	}
}

func TestSaveRaw_RejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := SaveRaw(path, json.RawMessage("{not json")); err == nil {
		t.Error("SaveRaw() accepted invalid JSON")
	}
}

func TestLoadResponse_MissingFile(t *testing.T) {
	if _, err := LoadResponse(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadResponse() succeeded on a missing file")
	}
}
