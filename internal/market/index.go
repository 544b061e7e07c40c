package market

import "github.com/sheikh-saqib/marketplace-ledger-system/internal/models"

// itemIndex maps a live item id to the user name that owns it. It is
// a cached view over the item slices embedded in the accounts, never
// a second source of truth: every ownership change updates it in the
// same critical section as the embedded slice.
//
// The index is keyed by owner name, so an account rename operation
// would have to re-key it; no such operation exists today.
type itemIndex map[int]string

// buildIndex derives the index by flattening every account's items.
func buildIndex(accounts []models.Account) itemIndex {
	idx := make(itemIndex)
	for _, a := range accounts {
		for _, item := range a.Items {
			idx[item.ID] = a.UserName
		}
	}
	return idx
}
