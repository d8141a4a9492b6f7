package renderer

import (
	"slices"

	"github.com/Rhymond/go-money"
	"github.com/heikofkoehler/monarch"
	"github.com/shopspring/decimal"
)

// USD is a dollar amount rendered with currency formatting.
// Monarch Money reports all values in USD.
type USD struct {
	value decimal.Decimal
}

// String formats the amount like "$1,234.56".
func (u USD) String() string {
	cur := money.New(0, money.USD).Currency()
	return cur.Formatter().Format(u.value.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// AccountSummary aggregates the holdings of one account.
type AccountSummary struct {
	Name        string
	Institution string
	Positions   int
	Value       USD
}

// Summary is the per-account aggregation of a holdings export.
type Summary struct {
	Accounts  []AccountSummary
	Positions int
	Total     USD
}

// NewSummary aggregates flat holding records per account, largest account
// first.
func NewSummary(records []monarch.HoldingRecord) *Summary {
	type acc struct {
		name        string
		institution string
		positions   int
		value       decimal.Decimal
	}
	index := make(map[string]*acc)
	var order []string
	total := decimal.Zero

	for _, r := range records {
		a, ok := index[r.AccountID]
		if !ok {
			a = &acc{name: r.AccountName, institution: r.InstitutionName}
			index[r.AccountID] = a
			order = append(order, r.AccountID)
		}
		a.positions++
		a.value = a.value.Add(r.Value)
		total = total.Add(r.Value)
	}

	s := &Summary{Positions: len(records), Total: USD{total}}
	for _, id := range order {
		a := index[id]
		s.Accounts = append(s.Accounts, AccountSummary{
			Name:        a.name,
			Institution: a.institution,
			Positions:   a.positions,
			Value:       USD{a.value},
		})
	}
	slices.SortStableFunc(s.Accounts, func(x, y AccountSummary) int {
		return y.Value.value.Cmp(x.Value.value)
	})
	return s
}

// SummaryMarkdown renders the per-account summary report.
func SummaryMarkdown(s *Summary) string {
	return renderTemplate("summary", "summary.md", s)
}
