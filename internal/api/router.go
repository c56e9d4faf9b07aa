// Package api wires the HTTP surface: routing, middleware, and handlers.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mood-village/server/internal/api/handlers"
	"github.com/mood-village/server/internal/api/middleware"
	"github.com/mood-village/server/internal/auth"
	"github.com/mood-village/server/internal/config"
	"github.com/mood-village/server/internal/domain/checkins"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/domain/profiles"
	"github.com/mood-village/server/internal/metrics"
	"github.com/mood-village/server/internal/storage"
)

// NewRouter builds the full handler chain over an opened store.
func NewRouter(cfg config.Config, logger zerolog.Logger, store storage.Store) http.Handler {
	source := store.Source()
	eventsService := events.NewService(store.Events(), source)
	lanternsService := lanterns.NewService(store.Lanterns(), source)
	checkinsService := checkins.NewService(store.Checkins(), source)
	profilesService := profiles.NewService(store.Profiles(), source, cfg.Community.DefaultID)

	eventsHandler := handlers.NewEventsHandler(eventsService)
	lanternsHandler := handlers.NewLanternsHandler(lanternsService)
	checkinsHandler := handlers.NewCheckinsHandler(checkinsService)
	profilesHandler := handlers.NewProfilesHandler(profilesService)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(store))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.Handle("/api/events", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(eventsHandler.List),
		http.MethodPost: http.HandlerFunc(eventsHandler.Create),
	}))
	mux.Handle("/api/events/{eventId}", methodMux(map[string]http.Handler{
		http.MethodPatch:  http.HandlerFunc(eventsHandler.Update),
		http.MethodDelete: http.HandlerFunc(eventsHandler.Delete),
	}))
	mux.Handle("/api/events/{eventId}/rsvp", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(eventsHandler.SetRSVP),
	}))

	mux.Handle("/api/moods", methodMux(map[string]http.Handler{
		http.MethodGet: handlers.Moods(),
	}))

	mux.Handle("/api/lanterns", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(lanternsHandler.List),
		http.MethodPost: http.HandlerFunc(lanternsHandler.Create),
	}))
	mux.Handle("/api/lanterns/{lanternId}/replies", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(lanternsHandler.ListReplies),
		http.MethodPost: http.HandlerFunc(lanternsHandler.CreateReply),
	}))

	mux.Handle("/api/profile", methodMux(map[string]http.Handler{
		http.MethodGet:   http.HandlerFunc(profilesHandler.Get),
		http.MethodPatch: http.HandlerFunc(profilesHandler.Update),
	}))
	mux.Handle("/api/profile/settings", methodMux(map[string]http.Handler{
		http.MethodPatch: http.HandlerFunc(profilesHandler.UpdateSettings),
	}))
	mux.Handle("/api/profile/trusted-contact", methodMux(map[string]http.Handler{
		http.MethodPut: http.HandlerFunc(profilesHandler.SetTrustedContact),
	}))

	mux.Handle("/api/checkins", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(checkinsHandler.List),
		http.MethodPost: http.HandlerFunc(checkinsHandler.Create),
	}))
	mux.Handle("/api/checkins/summary", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(checkinsHandler.Summary),
	}))

	mux.Handle("/api/map", methodMux(map[string]http.Handler{
		http.MethodGet: handlers.MoodMap(),
	}))

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)

	var handler http.Handler = mux
	handler = auth.Middleware(verifier)(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	return handler
}

func methodMux(byMethod map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := byMethod[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(byMethod))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(byMethod map[string]http.Handler) string {
	methods := make([]string, 0, len(byMethod))
	for method := range byMethod {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
