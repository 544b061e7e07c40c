package server

import "net/http"

// Router binds every route to its handler. The surface mirrors the
// pages of the original web app: account registration and lookup,
// the item catalogue, and the buy form.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)

	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("GET /users/{user_name}", s.getUser)
	mux.HandleFunc("DELETE /users/{user_name}", s.deleteUser)

	mux.HandleFunc("GET /items", s.listItems)
	mux.HandleFunc("POST /items", s.addItem)
	mux.HandleFunc("POST /buy", s.buy)

	return mux
}
