package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sc2ladder/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/*", handler(s.getAsset))
	r.Head("/*", handler(s.getAsset))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
