package models

import "github.com/shopspring/decimal"

func init() {
	// The persisted format carries balances and prices as plain JSON
	// numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Account is a named party holding a balance and the items it owns.
// UserName is the primary key; Items keeps insertion order.
type Account struct {
	UserName string          `json:"user_name"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
	Items    []Item          `json:"items"`
}
