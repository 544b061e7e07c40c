package market

import "github.com/sheikh-saqib/marketplace-ledger-system/internal/models"

// accountRegistry holds every account in insertion order. User names
// are unique; lookups are linear, which is fine at this scale.
type accountRegistry struct {
	accounts []models.Account
}

// findIndex returns the position of the account with the given user
// name, or -1.
func (r *accountRegistry) findIndex(userName string) int {
	for i := range r.accounts {
		if r.accounts[i].UserName == userName {
			return i
		}
	}
	return -1
}

// get returns a pointer into the registry's backing slice. The
// pointer is only valid until the next add or remove.
func (r *accountRegistry) get(userName string) *models.Account {
	i := r.findIndex(userName)
	if i < 0 {
		return nil
	}
	return &r.accounts[i]
}

func (r *accountRegistry) add(a models.Account) {
	r.accounts = append(r.accounts, a)
}

func (r *accountRegistry) remove(i int) models.Account {
	a := r.accounts[i]
	r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
	return a
}
