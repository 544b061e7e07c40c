package storage

import (
	"context"
	"errors"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/models"
)

// ErrCorrupt reports that a backend read content it could not parse.
// A missing backing file is not corruption; backends bootstrap an
// empty collection in that case.
var ErrCorrupt = errors.New("corrupt account data")

// Store persists the complete account collection as a single blob.
// Save overwrites whatever was previously stored; there is no
// incremental persistence.
type Store interface {
	Load(ctx context.Context) ([]models.Account, error)
	Save(ctx context.Context, accounts []models.Account) error
}
