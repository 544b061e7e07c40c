package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sheikh-saqib/marketplace-ledger-system/internal/market"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeMarketError maps domain errors onto HTTP status codes: unknown
// names and items are 404, a taken user name is 409, the remaining
// transaction failures are 400. Anything else is an internal error
// (storage failures included) and is logged here.
func (s *Server) writeMarketError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, market.ErrAccountNotFound), errors.Is(err, market.ErrItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, market.ErrAccountExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, market.ErrSelfPurchase),
		errors.Is(err, market.ErrInsufficientFunds),
		errors.Is(err, market.ErrIDSpaceExhausted):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
