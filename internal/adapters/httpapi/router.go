package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health endpoint is used for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/itineraries", func(r chi.Router) {
		r.Post("/", s.CreateItinerary)
		r.Get("/", s.ListItineraries)
		r.Route("/{itineraryId}", func(r chi.Router) {
			r.Get("/", s.GetItinerary)
			r.Post("/days/{dayIndex}/regenerate", s.RegenerateDay)
			r.Put("/days/{dayIndex}/items/{itemIndex}", s.SwapActivity)
			r.Get("/days/{dayIndex}/items/{itemIndex}/alternatives", s.ListAlternatives)
		})
	})
	return r
}
