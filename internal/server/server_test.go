package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/market"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/server"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	m, err := market.New(context.Background(), memory.NewStore())
	require.NoError(t, err)
	ts := httptest.NewServer(server.New(m, nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func registerUser(t *testing.T, ts *httptest.Server, userName string, balance int64) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, ts.URL+"/register", map[string]any{
		"user_name":        userName,
		"name":             userName,
		"starting_balance": balance,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterAndGetUser(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)

	resp := doJSON(t, http.MethodGet, ts.URL+"/users/alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var account models.Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&account))
	assert.Equal(t, "alice", account.UserName)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
	assert.Empty(t, account.Items)
}

func TestRegisterDuplicateConflict(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)

	resp := doJSON(t, http.MethodPost, ts.URL+"/register", map[string]any{
		"user_name": "alice",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterMissingUserName(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodPost, ts.URL+"/register", map[string]any{
		"name": "Nameless",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp := doJSON(t, http.MethodGet, ts.URL+"/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)

	resp := doJSON(t, http.MethodPost, ts.URL+"/login", map[string]any{"user_name": "alice"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, ts.URL+"/login", map[string]any{"user_name": "nobody"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemsAndBuyFlow(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)
	registerUser(t, ts, "bob", 50)

	resp := doJSON(t, http.MethodPost, ts.URL+"/items", map[string]any{
		"owner": "alice",
		"name":  "book",
		"price": 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))

	resp = doJSON(t, http.MethodGet, ts.URL+"/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listings []models.Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "alice", listings[0].Seller)

	resp = doJSON(t, http.MethodPost, ts.URL+"/buy", map[string]any{
		"buyer":   "bob",
		"item_id": item.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/users/bob", nil)
	var bob models.Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bob))
	assert.True(t, bob.Balance.Equal(decimal.NewFromInt(20)))
	require.Len(t, bob.Items, 1)
	assert.Equal(t, item.ID, bob.Items[0].ID)
}

func TestBuyFailures(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)
	registerUser(t, ts, "poor", 1)

	resp := doJSON(t, http.MethodPost, ts.URL+"/items", map[string]any{
		"owner": "alice", "name": "book", "price": 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))

	// Unknown item id.
	resp = doJSON(t, http.MethodPost, ts.URL+"/buy", map[string]any{"buyer": "alice", "item_id": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Seller buying their own item.
	resp = doJSON(t, http.MethodPost, ts.URL+"/buy", map[string]any{"buyer": "alice", "item_id": item.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Not enough balance.
	resp = doJSON(t, http.MethodPost, ts.URL+"/buy", map[string]any{"buyer": "poor", "item_id": item.ID})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	ts := newTestServer(t)
	registerUser(t, ts, "alice", 100)

	resp := doJSON(t, http.MethodPost, ts.URL+"/items", map[string]any{
		"owner": "alice", "name": "book", "price": 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/users/alice", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/users/alice", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The account's items left the market with it.
	resp = doJSON(t, http.MethodGet, ts.URL+"/items", nil)
	var listings []models.Listing
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listings))
	assert.Empty(t, listings)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/users/alice", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
