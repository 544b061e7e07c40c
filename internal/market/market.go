// Package market implements the marketplace ledger: named accounts
// holding balances and items, with item ownership transferred between
// accounts for a price. All state lives behind a single mutex and is
// written through a storage.Store after every successful mutation.
package market

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models/events"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage"
)

// Market owns the account registry and the derived item index. One
// mutex serializes every operation, persistence write included, so
// two concurrent purchases of the same item can never both pass
// validation against stale state.
type Market struct {
	mu        sync.Mutex
	registry  accountRegistry
	index     itemIndex
	store     storage.Store
	publisher interfaces.EventPublisher
	logger    *slog.Logger
}

// New loads the full collection from the store and rebuilds the item
// index from the embedded item slices. A load failure is fatal to the
// caller; continuing with partial state would corrupt the ledger.
func New(ctx context.Context, store storage.Store) (*Market, error) {
	accounts, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Market{
		registry: accountRegistry{accounts: accounts},
		index:    buildIndex(accounts),
		store:    store,
		logger:   slog.Default(),
	}, nil
}

// SetPublisher attaches an event publisher for successful purchases.
// A nil publisher disables publication.
func (m *Market) SetPublisher(p interfaces.EventPublisher) {
	m.publisher = p
}

// Register creates an account with an empty inventory. The user name
// must not be taken.
func (m *Market) Register(ctx context.Context, userName, name string, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registry.findIndex(userName) >= 0 {
		return ErrAccountExists
	}
	m.registry.add(models.Account{
		UserName: userName,
		Name:     name,
		Balance:  balance,
		Items:    []models.Item{},
	})
	return m.persist(ctx)
}

// Lookup returns a copy of the account, items included.
func (m *Market) Lookup(userName string) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := m.registry.get(userName)
	if a == nil {
		return models.Account{}, ErrAccountNotFound
	}
	cp := *a
	cp.Items = make([]models.Item, len(a.Items))
	copy(cp.Items, a.Items)
	return cp, nil
}

// ListItems returns every live item with its seller, ordered by id so
// the output is stable between calls.
func (m *Market) ListItems() []models.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int, 0, len(m.index))
	for id := range m.index {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	listings := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		owner := m.index[id]
		a := m.registry.get(owner)
		for _, item := range a.Items {
			if item.ID == id {
				listings = append(listings, models.Listing{Item: item, Seller: owner})
				break
			}
		}
	}
	return listings
}

// AddItem mints a new item under the owner's name. The item is bound
// to its owner from birth; it can later change hands only through Buy.
func (m *Market) AddItem(ctx context.Context, owner, itemName string, price decimal.Decimal) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a := m.registry.get(owner)
	if a == nil {
		return models.Item{}, ErrAccountNotFound
	}
	id, err := m.generateID()
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{ID: id, Name: itemName, Price: price}
	a.Items = append(a.Items, item)
	m.index[id] = owner
	return item, m.persist(ctx)
}

// Buy transfers ownership of an item to the buyer and moves the price
// from buyer to seller. Every guard runs before the first mutation,
// so a failed call changes nothing; the mutations themselves happen
// inside one critical section and no intermediate state (debited but
// not credited, owned by nobody) is ever observable.
func (m *Market) Buy(ctx context.Context, buyerName string, itemID int) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buyer := m.registry.get(buyerName)
	if buyer == nil {
		return models.Item{}, ErrAccountNotFound
	}
	sellerName, ok := m.index[itemID]
	if !ok {
		return models.Item{}, ErrItemNotFound
	}
	if sellerName == buyerName {
		return models.Item{}, ErrSelfPurchase
	}

	// The index invariant guarantees the seller exists and holds the
	// item.
	seller := m.registry.get(sellerName)
	itemPos := -1
	for i := range seller.Items {
		if seller.Items[i].ID == itemID {
			itemPos = i
			break
		}
	}
	item := seller.Items[itemPos]
	if buyer.Balance.LessThan(item.Price) {
		return models.Item{}, ErrInsufficientFunds
	}

	buyer.Balance = buyer.Balance.Sub(item.Price)
	seller.Balance = seller.Balance.Add(item.Price)
	seller.Items = append(seller.Items[:itemPos], seller.Items[itemPos+1:]...)
	buyer.Items = append(buyer.Items, item)
	m.index[itemID] = buyerName

	if err := m.persist(ctx); err != nil {
		return models.Item{}, err
	}
	m.publishSale(item, sellerName, buyerName)
	return item, nil
}

// DeleteAccount removes the account and drops every item it owned
// from the index. The items are gone for good; their ids return to
// the free pool.
func (m *Market) DeleteAccount(ctx context.Context, userName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.registry.findIndex(userName)
	if i < 0 {
		return ErrAccountNotFound
	}
	removed := m.registry.remove(i)
	for _, item := range removed.Items {
		delete(m.index, item.ID)
	}
	return m.persist(ctx)
}

// persist rewrites the whole collection. Callers must hold m.mu. A
// save failure is returned so data loss is never silent; by then the
// in-memory mutation has already been committed, matching the
// original's write-after-mutate order.
func (m *Market) persist(ctx context.Context) error {
	return m.store.Save(ctx, m.registry.accounts)
}

// publishSale emits an ItemSold event. Best effort: a publish failure
// is logged, not returned, because the purchase is already committed.
func (m *Market) publishSale(item models.Item, seller, buyer string) {
	if m.publisher == nil {
		return
	}
	evt := events.ItemSold{
		EventID:    uuid.New().String(),
		ItemID:     item.ID,
		ItemName:   item.Name,
		Price:      item.Price,
		Seller:     seller,
		Buyer:      buyer,
		OccurredAt: time.Now().UTC(),
	}
	if err := m.publisher.Publish("item_sold", evt); err != nil {
		m.logger.Warn("failed to publish sale event", "item_id", item.ID, "error", err)
	}
}
