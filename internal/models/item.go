package models

import "github.com/shopspring/decimal"

// Item is a priced unit of inventory owned by exactly one account at
// a time. IDs are drawn from [0, 100) and unique across the system.
type Item struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Listing pairs a live item with the account currently selling it.
type Listing struct {
	Item   Item   `json:"item"`
	Seller string `json:"seller"`
}
