package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/memory"
)

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	accounts, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	saved := []models.Account{{
		UserName: "alice",
		Name:     "Alice",
		Balance:  decimal.NewFromInt(100),
		Items:    []models.Item{{ID: 1, Name: "book", Price: decimal.NewFromInt(30)}},
	}}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

// Load hands out copies: mutating the result must not leak back into
// the store.
func TestLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Save(ctx, []models.Account{{
		UserName: "alice",
		Items:    []models.Item{{ID: 1, Name: "book"}},
	}}))

	first, err := store.Load(ctx)
	require.NoError(t, err)
	first[0].UserName = "mallory"
	first[0].Items[0].Name = "stolen"

	second, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", second[0].UserName)
	assert.Equal(t, "book", second[0].Items[0].Name)
}
