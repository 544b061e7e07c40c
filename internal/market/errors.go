package market

import "errors"

// Domain errors returned by Market operations. All of them are
// recoverable: a failed operation mutates nothing, and callers map
// them onto user-facing responses or exit codes.
var (
	// ErrAccountExists is returned by Register for a taken user name.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when a user name resolves to no
	// account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrItemNotFound is returned when an item id is not live.
	ErrItemNotFound = errors.New("item not found")

	// ErrSelfPurchase is returned when a buyer already owns the item.
	ErrSelfPurchase = errors.New("buyer already owns this item")

	// ErrInsufficientFunds is returned when the buyer's balance is
	// below the item price.
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrIDSpaceExhausted is returned when all item ids are in use.
	ErrIDSpaceExhausted = errors.New("no item ids left")
)
