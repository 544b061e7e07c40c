package server

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName        string          `json:"user_name"`
		Name            string          `json:"name"`
		StartingBalance decimal.Decimal `json:"starting_balance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserName == "" {
		writeError(w, http.StatusBadRequest, "user_name is a mandatory field")
		return
	}

	if err := s.market.Register(r.Context(), req.UserName, req.Name, req.StartingBalance); err != nil {
		s.writeMarketError(w, err)
		return
	}
	s.logger.Info("registered account", "user_name", req.UserName)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

// login is a lookup in disguise: the original app had no passwords,
// signing in just resolved the user name.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserName string `json:"user_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.market.Lookup(req.UserName)
	if err != nil {
		s.writeMarketError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	account, err := s.market.Lookup(r.PathValue("user_name"))
	if err != nil {
		s.writeMarketError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("user_name")
	if err := s.market.DeleteAccount(r.Context(), userName); err != nil {
		s.writeMarketError(w, err)
		return
	}
	s.logger.Info("deleted account", "user_name", userName)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.market.ListItems())
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Owner string          `json:"owner"`
		Name  string          `json:"name"`
		Price decimal.Decimal `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.market.AddItem(r.Context(), req.Owner, req.Name, req.Price)
	if err != nil {
		s.writeMarketError(w, err)
		return
	}
	s.logger.Info("added item", "item_id", item.ID, "owner", req.Owner)
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) buy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Buyer  string `json:"buyer"`
		ItemID int    `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.market.Buy(r.Context(), req.Buyer, req.ItemID)
	if err != nil {
		s.writeMarketError(w, err)
		return
	}
	s.logger.Info("item sold", "item_id", item.ID, "buyer", req.Buyer)
	writeJSON(w, http.StatusOK, item)
}
