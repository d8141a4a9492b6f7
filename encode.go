package monarch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// This file contains functions to persist and reload portfolio exports.
// The JSON file is the raw API payload, pretty-printed so it remains
// human readable and diffable; holdings are exported as plain CSV.

// DecodeResponse decodes a portfolio export from r.
func DecodeResponse(r io.Reader) (*Response, error) {
	var resp Response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	return &resp, nil
}

// LoadResponse reads and decodes a portfolio export file.
func LoadResponse(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", path, err)
	}
	defer f.Close()

	resp, err := DecodeResponse(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse portfolio file %q: %w", path, err)
	}
	return resp, nil
}

// SaveRaw writes a raw portfolio payload to path, pretty-printed with a
// 4-space indent.
func SaveRaw(path string, raw json.RawMessage) error {
	var pretty any
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return fmt.Errorf("cannot parse raw portfolio payload: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(pretty); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}

// WriteCSV writes holding records to w with the canonical header row.
// An empty record list still produces the header, so downstream consumers
// always see the schema.
func WriteCSV(w io.Writer, records []HoldingRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes holding records to a CSV file at path.
func WriteCSVFile(path string, records []HoldingRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
