package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/memorial-backend/internal/config"
	"github.com/heartmarshall/memorial-backend/internal/transport/middleware"
)

// RouterDeps are the handlers and cross-cutting pieces the router mounts.
type RouterDeps struct {
	Log        *slog.Logger
	CORS       config.CORSConfig
	Verifier   middleware.TokenVerifier
	Limiter    *middleware.RateLimiter
	Health     *HealthHandler
	Account    *AccountHandler
	Moderation *ModerationHandler
	Admin      *AdminHandler
}

// NewRouter builds the HTTP handler. Probes live at the root; the API is
// versioned under /api/v1.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Log))
	r.Use(middleware.CORS(d.CORS))
	r.Use(middleware.Auth(d.Verifier))
	r.Use(middleware.Logger(d.Log))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	limit := func(h http.HandlerFunc) http.Handler {
		if d.Limiter == nil {
			return h
		}
		return d.Limiter.Handler(h)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/me", func(r chi.Router) {
			r.Post("/", d.Account.Provision)
			r.Get("/", d.Account.Me)
			r.Put("/channels", d.Account.UpdateChannels)
			r.Get("/notifications", d.Account.Notifications)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Method(http.MethodPost, "/", limit(d.Moderation.CreateProfile))
			r.Route("/{profileID}", func(r chi.Router) {
				r.Method(http.MethodPost, "/items", limit(d.Moderation.SubmitItem))
				r.Put("/editors/{userID}", d.Moderation.AddEditor)
				r.Delete("/editors/{userID}", d.Moderation.RemoveEditor)
			})
		})

		r.Get("/moderation/pending", d.Moderation.ListPending)

		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Post("/moderate", d.Moderation.Moderate)
			r.Post("/archive", d.Moderation.Archive)
			r.Delete("/", d.Moderation.Delete)
			r.Get("/capabilities", d.Moderation.Capabilities)
			r.Get("/history", d.Moderation.History)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/notifications", d.Admin.ListNotifications)
			r.Post("/notifications/requeue", d.Admin.Requeue)
			r.Put("/users/{userID}/role", d.Admin.SetRole)
		})
	})

	return r
}
