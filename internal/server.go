package internal

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/showdesk/showdesk/internal/autotask"
	"github.com/showdesk/showdesk/internal/config"
	"github.com/showdesk/showdesk/internal/event"
	"github.com/showdesk/showdesk/internal/pushnotification"
	"github.com/showdesk/showdesk/internal/reminder"
	"github.com/showdesk/showdesk/internal/stats"
	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/clog"
)

type Server struct {
	server                 *http.Server
	env                    *config.BaseEnv
	eventServer            *event.Server
	taskServer             *task.Server
	autoTaskServer         *autotask.Server
	reminderServer         *reminder.Server
	statsServer            *stats.Server
	pushNotificationServer *pushnotification.Server
}

func NewServer(
	env *config.BaseEnv,
	eventServer *event.Server,
	taskServer *task.Server,
	autoTaskServer *autotask.Server,
	reminderServer *reminder.Server,
	statsServer *stats.Server,
	pushNotificationServer *pushnotification.Server,
) *Server {
	return &Server{
		env:                    env,
		eventServer:            eventServer,
		taskServer:             taskServer,
		autoTaskServer:         autoTaskServer,
		reminderServer:         reminderServer,
		statsServer:            statsServer,
		pushNotificationServer: pushNotificationServer,
	}
}

// ListenAndServe starts the HTTP server. The provided context is used as the
// base context for all incoming requests via http.Server.BaseContext, so
// cancelling it (e.g. on shutdown signal) cancels in-flight request contexts.
func (s *Server) ListenAndServe(ctx context.Context) error {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(
			clog.SlogChiMiddleware(),
			cerr.NewJSONResponderChiMiddleware(),
		)
		s.eventServer.Routes(r)
		s.taskServer.Routes(r)
		s.autoTaskServer.Routes(r)
		s.reminderServer.Routes(r)
		s.statsServer.Routes(r)
		s.pushNotificationServer.Routes(r)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			cerr.SetNewJSONError(r.Context(), cerr.NotFound, "not found", nil)
		})
	})

	mux := http.NewServeMux()
	mux.Handle("/health", &HealthChecker{})
	mux.Handle("/api/", r)

	addr := net.JoinHostPort(s.env.HTTPHost, s.env.HTTPPort)
	slog.Info("starting server", "addr", addr)

	s.server = &http.Server{
		Addr: addr,
		Handler: h2c.NewHandler(cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(s.apiKeyMiddleware(mux)), &http2.Server{}),
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type HealthChecker struct{}

func (hc *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip API key check for the health endpoint.
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			apiKey = r.Header.Get("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}
		if apiKey != s.env.APIKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
