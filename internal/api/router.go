package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/lineage/internal/api/handlers"
	mw "github.com/Harshitk-cp/lineage/internal/api/middleware"
	"github.com/Harshitk-cp/lineage/internal/config"
	"github.com/Harshitk-cp/lineage/internal/domain"
	"github.com/Harshitk-cp/lineage/internal/service"
	"github.com/Harshitk-cp/lineage/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router, the core services, and lifecycle handles.
type App struct {
	Router   *chi.Mux
	Registry *service.RegistryService
	Ledger   *service.LedgerService
	Decay    *service.DecayService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires stores, services, handlers and middleware. A nil db runs
// the engine memory-only: no journal, no replay on restart.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	var journal domain.JournalStore
	if db != nil {
		journal = store.NewJournalStore(db)
	} else {
		logger.Warn("no database configured, journal disabled")
	}

	registrySvc := service.NewRegistryService(logger)
	ledgerSvc := service.NewLedgerService(registrySvc, journal, logger)
	decaySvc := service.NewDecayService(registrySvc, logger)
	decaySvc.SetInterval(config.DecayInterval())
	gate := service.NewTrustGate(registrySvc, logger)

	derivationHandler := handlers.NewDerivationHandler(ledgerSvc, registrySvc)
	evidenceHandler := handlers.NewEvidenceHandler(ledgerSvc, registrySvc)
	decayHandler := handlers.NewDecayHandler(ledgerSvc)
	trustHandler := handlers.NewTrustHandler(gate, config.ReadTrustThreshold())

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Registry:  registrySvc,
		Ledger:    ledgerSvc,
		Decay:     decaySvc,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/stats", app.statsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/derivations", func(r chi.Router) {
			r.Post("/", derivationHandler.Register)
			r.Get("/", derivationHandler.List)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", derivationHandler.Get)
				r.Get("/ancestors", derivationHandler.Ancestors)
				r.Get("/dependents", derivationHandler.Dependents)
				r.Post("/evidence", evidenceHandler.Update)
				r.Post("/usage", evidenceHandler.IncrementUsage)
			})
		})

		r.Post("/decay", decayHandler.TriggerDecay)
		r.Get("/trust/{name}", trustHandler.Check)
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) statsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"derivations":    app.Registry.Count(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure the journal store satisfies its interface at compile time.
var _ domain.JournalStore = (*store.JournalStore)(nil)
