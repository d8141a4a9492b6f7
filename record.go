package monarch

import (
	"slices"

	"github.com/shopspring/decimal"
)

// HoldingRecord is the flat projection of one holding joined with its
// node's security. It is the unit of every tabular export.
type HoldingRecord struct {
	AccountID       string
	AccountName     string
	AccountMask     string
	InstitutionName string
	HoldingName     string
	Ticker          string
	Type            string
	TypeDisplay     string
	Quantity        decimal.Decimal
	ClosingPrice    decimal.Decimal
	Value           decimal.Decimal
	SecurityID      string
	SecurityName    string
	SecurityTicker  string
	CurrentPrice    decimal.Decimal
	PriceUpdated    string
}

// headers is the canonical column order, shared by CSV and markdown exports.
var headers = []string{
	"account_id", "account_name", "account_mask", "institution_name",
	"holding_name", "ticker", "type", "type_display",
	"quantity", "closing_price", "value",
	"security_id", "security_name", "security_ticker",
	"current_price", "price_updated",
}

// Headers returns the canonical column names of a holdings table.
func Headers() []string { return slices.Clone(headers) }

// Row returns the record cells in Headers order.
func (r HoldingRecord) Row() []string {
	return []string{
		r.AccountID,
		r.AccountName,
		r.AccountMask,
		r.InstitutionName,
		r.HoldingName,
		r.Ticker,
		r.Type,
		r.TypeDisplay,
		r.Quantity.String(),
		r.ClosingPrice.String(),
		r.Value.String(),
		r.SecurityID,
		r.SecurityName,
		r.SecurityTicker,
		r.CurrentPrice.String(),
		r.PriceUpdated,
	}
}

// Flatten projects a portfolio response into flat holding records,
// sorted by value descending. Each node contributes one record per
// holding, all sharing the node's security fields.
func Flatten(resp *Response) []HoldingRecord {
	var records []HoldingRecord
	for _, edge := range resp.Portfolio.AggregateHoldings.Edges {
		sec := edge.Node.Security
		for _, h := range edge.Node.Holdings {
			records = append(records, HoldingRecord{
				AccountID:       h.Account.ID,
				AccountName:     h.Account.DisplayName,
				AccountMask:     h.Account.Mask,
				InstitutionName: h.Account.Institution.Name,
				HoldingName:     h.Name,
				Ticker:          h.Ticker,
				Type:            h.Type,
				TypeDisplay:     h.TypeDisplay,
				Quantity:        h.Quantity,
				ClosingPrice:    h.ClosingPrice,
				Value:           h.Value,
				SecurityID:      sec.ID,
				SecurityName:    sec.Name,
				SecurityTicker:  sec.Ticker,
				CurrentPrice:    sec.CurrentPrice,
				PriceUpdated:    sec.CurrentPriceUpdatedAt,
			})
		}
	}
	slices.SortStableFunc(records, func(a, b HoldingRecord) int {
		return b.Value.Cmp(a.Value)
	})
	return records
}
