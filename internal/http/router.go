package httpapi

import (
	"net/http"

	"horatime-api/internal/config"
	"horatime-api/internal/http/handlers"
	"horatime-api/internal/middleware"
	"horatime-api/internal/queue"
	"horatime-api/internal/timezone"
	"horatime-api/internal/ws"
	"horatime-api/pkg/response"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, cfg config.Config, svc *timezone.Service, events *queue.LookupEvents, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))
	r.Use(chimw.Recoverer)

	options := cors.Options{
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Requested-With",
			"X-Request-Id",
			"Cache-Control",
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         3600,
	}
	if len(cfg.CorsAllowedOrigins) > 0 {
		options.AllowedOrigins = cfg.CorsAllowedOrigins
	} else {
		options.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(options))

	h := &handlers.Handler{Logger: logger, Config: cfg, Timezone: svc, Events: events}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Text(w, http.StatusOK, "ok")
	})

	r.Route("/api/timezone", func(r chi.Router) {
		r.Use(setResponseHeader("X-Service-Version", cfg.AppVersion))
		r.Get("/", h.TimezoneGet)
		r.Get("/health", h.TimezoneHealth)
		r.Get("/info", h.TimezoneInfo)
		r.Get("/locations", h.TimezoneLocations)
	})

	if wsServer != nil {
		r.Get("/ws/timezone", wsServer.ClockWS)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}

func setResponseHeader(name string, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(name, value)
			next.ServeHTTP(w, r)
		})
	}
}
