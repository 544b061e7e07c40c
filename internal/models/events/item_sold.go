package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemSold is published after a successful purchase.
type ItemSold struct {
	EventID    string          `json:"event_id"`
	ItemID     int             `json:"item_id"`
	ItemName   string          `json:"item_name"`
	Price      decimal.Decimal `json:"price"`
	Seller     string          `json:"seller"`
	Buyer      string          `json:"buyer"`
	OccurredAt time.Time       `json:"occurred_at"`
}
