package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kiwari-pos/barista/internal/config"
	"github.com/kiwari-pos/barista/internal/handler"
	"github.com/kiwari-pos/barista/internal/metrics"
	mw "github.com/kiwari-pos/barista/internal/middleware"
	"github.com/kiwari-pos/barista/internal/pricing"
	"github.com/kiwari-pos/barista/internal/ws"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Engine   *pricing.Engine
	Hub      *ws.Hub
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
}

// New creates a Chi router with all application routes wired up.
// Quote routes require a terminal token when a JWT secret is configured.
func New(d Deps) chi.Router {
	cfg := d.Config
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	menuHandler := handler.NewMenuHandler()
	r.Route("/menu", menuHandler.RegisterRoutes)

	// WebSocket route (handles auth internally via query param)
	if d.Hub != nil {
		r.Get("/ws/boards/{board}", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWS(d.Hub, cfg.JWTSecret, w, r)
		})
	}

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		var pub handler.Publisher
		if d.Hub != nil {
			pub = d.Hub
		}
		quoteHandler := handler.NewQuoteHandler(d.Engine, pub, d.Metrics, d.Logger)
		r.Route("/quotes", quoteHandler.RegisterRoutes)
	})

	d.Logger.Debug().Msg("router initialized")
	return r
}
