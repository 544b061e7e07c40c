// Package jsonfile persists the account collection as a single JSON
// array on disk, the same file layout the original deployment used.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
	"github.com/sheikh-saqib/marketplace-ledger-system/internal/storage"
)

// Store reads and rewrites one JSON file holding every account.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the whole collection. A missing file means first run: an
// empty collection is written out immediately so later saves have a
// home. Any other read failure is returned to the caller; malformed
// content is reported as storage.ErrCorrupt.
func (s *Store) Load(ctx context.Context) ([]models.Account, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrCorrupt, s.path, err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// Save rewrites the backing file in full. The bytes go to a temp file
// first and are renamed over the original, so a crash mid-write
// cannot leave a half-written collection behind.
func (s *Store) Save(_ context.Context, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	data, err := json.MarshalIndent(accounts, "", "    ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

var _ storage.Store = (*Store)(nil)
