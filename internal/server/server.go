// Package server exposes the marketplace ledger over a JSON HTTP API.
// It owns no state of its own; every request turns into exactly one
// Market call, and every transaction failure maps onto a status code.
package server

import (
	"log/slog"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/market"
)

type Server struct {
	market *market.Market
	logger *slog.Logger
}

func New(m *market.Market, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{market: m, logger: logger}
}
