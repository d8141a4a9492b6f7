package monarch

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFlatten(t *testing.T) {
	resp, err := LoadResponse("testdata/portfolio.json")
	if err != nil {
		t.Fatalf("LoadResponse() error = %v", err)
	}

	records := Flatten(resp)
	if got, want := len(records), 3; got != want {
		t.Fatalf("Flatten() returned %d records, want %d", got, want)
	}

	// Sorted by value descending: VTI (16870.35), AAPL brokerage (9300),
	// AAPL IRA (2325).
	wantOrder := []struct {
		ticker  string
		account string
		value   string
	}{
		{"VTI", "Brokerage", "16870.35"},
		{"AAPL", "Brokerage", "9300"},
		{"AAPL", "Roth IRA", "2325"},
	}
	for i, want := range wantOrder {
		r := records[i]
		if r.Ticker != want.ticker || r.AccountName != want.account {
			t.Errorf("records[%d] = %s/%s, want %s/%s", i, r.Ticker, r.AccountName, want.ticker, want.account)
		}
		if !r.Value.Equal(d(want.value)) {
			t.Errorf("records[%d].Value = %s, want %s", i, r.Value, want.value)
		}
	}
}

func TestFlatten_JoinsSecurityFields(t *testing.T) {
	resp, err := LoadResponse("testdata/portfolio.json")
	if err != nil {
		t.Fatalf("LoadResponse() error = %v", err)
	}

	records := Flatten(resp)
	for _, r := range records {
		if r.Ticker != "AAPL" {
			continue
		}
		if r.SecurityID != "sec-aapl" {
			t.Errorf("SecurityID = %q, want %q", r.SecurityID, "sec-aapl")
		}
		if r.SecurityName != "Apple Inc" {
			t.Errorf("SecurityName = %q, want %q", r.SecurityName, "Apple Inc")
		}
		if !r.CurrentPrice.Equal(d("234.1")) {
			t.Errorf("CurrentPrice = %s, want 234.1", r.CurrentPrice)
		}
		if r.PriceUpdated != "2025-08-22T20:00:00+00:00" {
			t.Errorf("PriceUpdated = %q", r.PriceUpdated)
		}
		if r.InstitutionName != "Fidelity" {
			t.Errorf("InstitutionName = %q, want %q", r.InstitutionName, "Fidelity")
		}
	}
}

func TestFlatten_MissingKeysDefaultToZero(t *testing.T) {
	resp, err := LoadResponse("testdata/portfolio.json")
	if err != nil {
		t.Fatalf("LoadResponse() error = %v", err)
	}

	// The VTI holding omits type, typeDisplay, closingPrice and the
	// account mask.
	records := Flatten(resp)
	var vti *HoldingRecord
	for i := range records {
		if records[i].Ticker == "VTI" {
			vti = &records[i]
		}
	}
	if vti == nil {
		t.Fatal("no VTI record found")
	}
	if vti.Type != "" || vti.TypeDisplay != "" || vti.AccountMask != "" {
		t.Errorf("missing string fields should be empty, got %q %q %q", vti.Type, vti.TypeDisplay, vti.AccountMask)
	}
	if !vti.ClosingPrice.IsZero() {
		t.Errorf("missing closingPrice should be zero, got %s", vti.ClosingPrice)
	}
}

func TestFlatten_Empty(t *testing.T) {
	records := Flatten(&Response{})
	if len(records) != 0 {
		t.Errorf("Flatten(empty) returned %d records, want 0", len(records))
	}
}

func TestRow_MatchesHeaders(t *testing.T) {
	r := HoldingRecord{
		AccountID:   "acc",
		AccountName: "Brokerage",
		Quantity:    d("55.25"),
		Value:       d("16870.35"),
	}
	row := r.Row()
	if len(row) != len(Headers()) {
		t.Fatalf("Row() has %d cells, Headers() has %d", len(row), len(Headers()))
	}
	if row[8] != "55.25" {
		t.Errorf("quantity cell = %q, want %q", row[8], "55.25")
	}
	if row[10] != "16870.35" {
		t.Errorf("value cell = %q, want %q", row[10], "16870.35")
	}
}
