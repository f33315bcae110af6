package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the health check and the v1 API, with mws applied to every route.
func NewRouter(gen *GeneratorHandler, saved *SavedHandler, mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(mws...)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate", gen.HandleGenerate)
		r.Post("/strength", gen.HandleStrength)
		r.Get("/passwords", saved.HandleList)
		r.Post("/passwords", saved.HandleSave)
	})

	return r
}
