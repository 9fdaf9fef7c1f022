package chi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/callback-inbox/callback"
	"github.com/marcelsud/callback-inbox/metrics"
	"github.com/rs/zerolog"
)

// requestTimeout bounds API and callback requests; a manual forward may wait on its targets
const requestTimeout = 60 * time.Second

// Dependencies are the components served over HTTP
type Dependencies struct {
	Logger    zerolog.Logger
	Service   callback.UseCase
	Pipeline  Ingester
	Forwarder Forwarder
	Collector metrics.Collector

	// Realtime serves /socket.io/ and Metrics serves /metrics; both are optional
	Realtime http.Handler
	Metrics  http.Handler

	MaxBodyBytes int64
}

// Handlers sets up the callback, management and real-time routes
func Handlers(deps Dependencies) *chi.Mux {
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	// long-polling and scrapes stay out of the request log and the timeout
	if deps.Realtime != nil {
		r.Handle("/socket.io/*", deps.Realtime)
	}
	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(httplog.RequestLogger(deps.Logger))
		r.Use(middleware.Timeout(requestTimeout))

		ingestHandler := handleCallback(deps.Pipeline, deps.MaxBodyBytes)
		r.HandleFunc("/callback/{rootPath}", ingestHandler)
		r.HandleFunc("/callback/{rootPath}/*", ingestHandler)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/applications", postApplication(deps.Service))
			r.Get("/applications", getApplications(deps.Service))
			r.Get("/applications/{id}", getApplication(deps.Service))
			r.Put("/applications/{id}", putApplication(deps.Service))
			r.Delete("/applications/{id}", deleteApplication(deps.Service))
			r.Post("/applications/{id}/receivers", postReceiver(deps.Service))
			r.Get("/applications/{id}/receivers", getReceivers(deps.Service))
			r.Get("/applications/{id}/messages", getApplicationMessages(deps.Service))

			r.Get("/receivers/{id}", getReceiver(deps.Service))
			r.Put("/receivers/{id}", putReceiver(deps.Service))
			r.Put("/receivers/{id}/auto-forward", putAutoForward(deps.Service))
			r.Delete("/receivers/{id}", deleteReceiver(deps.Service))
			r.Post("/receivers/{id}/targets", postTarget(deps.Service))
			r.Get("/receivers/{id}/targets", getTargets(deps.Service))
			r.Get("/receivers/{id}/messages", getReceiverMessages(deps.Service))
			r.Delete("/receivers/{id}/messages", clearMessages(deps.Service))

			r.Post("/targets/probe", postProbe(deps.Forwarder))
			r.Put("/targets/{id}", putTarget(deps.Service))
			r.Delete("/targets/{id}", deleteTarget(deps.Service))
			r.Put("/targets/{id}/enabled", putTargetEnabled(deps.Service))
			r.Get("/targets/{id}/logs", getTargetLogs(deps.Service))

			r.Get("/messages/{id}", getMessage(deps.Service))
			r.Delete("/messages/{id}", deleteMessage(deps.Service))
			r.Post("/messages/{id}/forward", postForward(deps.Service, deps.Forwarder))

			if deps.Collector != nil {
				r.Get("/stats", getStats(deps.Collector))
			}
		})
	})

	return r
}
