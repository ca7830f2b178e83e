package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jackc/pgx/v5/pgxpool"

	"payslip/internal/db"
	"payslip/internal/domain/employee"
	"payslip/internal/domain/payslip"
	"payslip/internal/platform/config"
	"payslip/internal/platform/email"
	"payslip/internal/platform/metrics"
	"payslip/internal/transport/http/api"
	employeehandler "payslip/internal/transport/http/handlers/employees"
	paysliphandler "payslip/internal/transport/http/handlers/payslips"
	"payslip/internal/transport/http/middleware"
)

// App wires the database pool, domain services and HTTP router
// together for one process lifetime.
type App struct {
	Config    config.Config
	Pool      *pgxpool.Pool
	Router    chi.Router
	collector *metrics.Collector
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	collector := metrics.New()
	store := employee.NewStore(pool)
	service := employee.NewService(store)
	renderer := payslip.NewRenderer(cfg)
	mailer := email.New(cfg)
	delivery := payslip.NewDelivery(store, renderer, mailer, cfg, collector)

	app := &App{
		Config:    cfg,
		Pool:      pool,
		collector: collector,
	}
	app.Router = app.buildRouter(service, delivery)
	return app, nil
}

func (a *App) buildRouter(service *employee.Service, delivery *payslip.Delivery) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	r.Use(middleware.Metrics(a.collector))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.Config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(a.Config.RateLimitPerMinute, time.Minute))

	r.Get("/healthz", a.handleHealth)
	r.Get("/readyz", a.handleReady)
	if a.Config.MetricsEnabled {
		r.Get("/metrics", a.handleMetrics)
	}

	employeehandler.NewHandler(service).RegisterRoutes(r)
	paysliphandler.NewHandler(delivery).RegisterRoutes(r)
	return r
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	api.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.Pool.Ping(ctx); err != nil {
		api.Fail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	api.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (a *App) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	api.JSON(w, http.StatusOK, a.collector.Snapshot())
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// drains in-flight requests before returning.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
