package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage"
)

// Store keeps the account collection in two tables, accounts and
// items. It implements the same whole-collection contract as the
// JSON file backend: Load reads everything, Save replaces everything
// in one transaction. Positions preserve insertion order.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to Postgres and verifies the connection.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		pos       INT PRIMARY KEY,
		user_name TEXT NOT NULL UNIQUE,
		name      TEXT NOT NULL,
		balance   NUMERIC NOT NULL
	);
	CREATE TABLE IF NOT EXISTS items (
		id         INT PRIMARY KEY,
		owner_name TEXT NOT NULL REFERENCES accounts (user_name) ON DELETE CASCADE,
		pos        INT NOT NULL,
		name       TEXT NOT NULL,
		price      NUMERIC NOT NULL
	);`

	_, err := db.ExecContext(ctx, schema)
	return err
}

func (p *Store) Load(ctx context.Context) ([]models.Account, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT user_name, name, balance FROM accounts ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	byName := map[string]int{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.UserName, &a.Name, &a.Balance); err != nil {
			return nil, err
		}
		a.Items = []models.Item{}
		byName[a.UserName] = len(accounts)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := p.db.QueryContext(ctx, `SELECT owner_name, id, name, price FROM items ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var owner string
		var item models.Item
		if err := itemRows.Scan(&owner, &item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		i, ok := byName[owner]
		if !ok {
			return nil, fmt.Errorf("%w: item %d owned by unknown account %q", storage.ErrCorrupt, item.ID, owner)
		}
		accounts[i].Items = append(accounts[i].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Save replaces the full collection inside one transaction so readers
// never observe a partially written state.
func (p *Store) Save(ctx context.Context, accounts []models.Account) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return err
	}

	const insertAccount = `INSERT INTO accounts (pos, user_name, name, balance) VALUES ($1, $2, $3, $4)`
	const insertItem = `INSERT INTO items (id, owner_name, pos, name, price) VALUES ($1, $2, $3, $4, $5)`

	for pos, a := range accounts {
		if _, err = tx.ExecContext(ctx, insertAccount, pos, a.UserName, a.Name, a.Balance); err != nil {
			return err
		}
		for itemPos, item := range a.Items {
			if _, err = tx.ExecContext(ctx, insertItem, item.ID, a.UserName, itemPos, item.Name, item.Price); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

var _ storage.Store = (*Store)(nil)
