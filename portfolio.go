package monarch

import "github.com/shopspring/decimal"

// This file contains the types mirroring the Web_GetPortfolio GraphQL payload.
// The envelope is {"portfolio": {"aggregateHoldings": {"edges": [{"node": ...}]}}}.
// Every field is optional upstream: missing keys decode to empty strings and
// zero decimals.

// Response is the outermost envelope of a portfolio export.
type Response struct {
	Portfolio Portfolio `json:"portfolio"`
}

// Portfolio holds the aggregate holdings connection.
type Portfolio struct {
	AggregateHoldings AggregateHoldings `json:"aggregateHoldings"`
}

// AggregateHoldings is a GraphQL connection of aggregate holding nodes.
type AggregateHoldings struct {
	Edges []Edge `json:"edges"`
}

// Edge wraps a single aggregate holding node.
type Edge struct {
	Node Node `json:"node"`
}

// Node groups one security with its holdings across all accounts.
type Node struct {
	Security Security  `json:"security"`
	Holdings []Holding `json:"holdings"`
}

// Security describes the instrument shared by the holdings of a node.
type Security struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Ticker                string          `json:"ticker"`
	CurrentPrice          decimal.Decimal `json:"currentPrice"`
	CurrentPriceUpdatedAt string          `json:"currentPriceUpdatedAt"`
	ClosingPrice          decimal.Decimal `json:"closingPrice"`
	Type                  string          `json:"type"`
	TypeDisplay           string          `json:"typeDisplay"`
}

// Holding is one position of a security in one account.
type Holding struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	TypeDisplay  string          `json:"typeDisplay"`
	Name         string          `json:"name"`
	Ticker       string          `json:"ticker"`
	ClosingPrice decimal.Decimal `json:"closingPrice"`
	Quantity     decimal.Decimal `json:"quantity"`
	Value        decimal.Decimal `json:"value"`
	Account      Account         `json:"account"`
}

// Account identifies where a holding is held.
type Account struct {
	ID          string      `json:"id"`
	Mask        string      `json:"mask"`
	DisplayName string      `json:"displayName"`
	Institution Institution `json:"institution"`
}

// Institution is the financial institution backing an account.
type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
