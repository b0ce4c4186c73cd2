package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cifra/internal/hymnservice"
	"github.com/starford/cifra/internal/storage"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
// audio may be nil, in which case the /audio routes are not mounted.
func NewRouter(svc *hymnservice.Service, audio storage.AudioStore, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Hymns.
	r.Get("/hymns", h.ListHymns)
	r.Post("/hymns", h.CreateHymn)
	r.Route("/hymns/{code}", func(r chi.Router) {
		r.Get("/", h.GetHymn)
		r.Put("/", h.UpdateHymn)
		r.Delete("/", h.DeleteHymn)
		r.Post("/transpose", h.TransposeHymn)
		r.Post("/step", h.StepHymn)
	})

	// Search.
	r.Get("/search", h.Search)

	// Chords and helpers.
	r.Get("/chords", h.ListChords)
	r.Get("/chords/{name}", h.GetChord)
	r.Get("/capo", Capo)
	r.Post("/pad", Pad)

	if audio != nil {
		ah := NewAudioHandler(audio)
		r.Get("/audio", ah.List)
		r.Post("/audio", ah.Upload)
		r.Get("/audio/{name}", ah.Serve)
	}

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
