package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/gorilla/mux"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/supermarket/internal/checkout"
	"github.com/mmynk/supermarket/internal/config"
	"github.com/mmynk/supermarket/internal/market"
	"github.com/mmynk/supermarket/internal/metrics"
	"github.com/mmynk/supermarket/internal/middleware"
	"github.com/mmynk/supermarket/internal/rest"
	"github.com/mmynk/supermarket/internal/service"
	"github.com/mmynk/supermarket/internal/storage"
	"github.com/mmynk/supermarket/internal/storage/postgres"
	"github.com/mmynk/supermarket/internal/storage/sqlite"
	"github.com/mmynk/supermarket/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.DBDriver)

	handler := newHandler(store, metrics.New(), checkout.FixedPrice(cfg.FixedPurchasePrice))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DatabaseURL)
	default:
		return sqlite.New(cfg.DBPath)
	}
}

// newHandler wires facades, both transports and the operational endpoints
// into a single handler.
func newHandler(store storage.Store, m *metrics.Metrics, pricer checkout.Pricer) http.Handler {
	items := market.NewItemService(store)
	supermarkets := market.NewSupermarketService(store)
	purchases := market.NewPurchaseService(store, checkout.NewEngine(store, checkout.WithPricer(pricer)), m)

	r := mux.NewRouter()
	r.Use(middleware.Metrics(m))

	// Register Connect services
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(m))
	itemPath, itemHandler := service.NewItemServiceHandler(service.NewItemService(items), interceptors)
	r.PathPrefix(itemPath).Handler(itemHandler)

	supermarketPath, supermarketHandler := service.NewSupermarketServiceHandler(service.NewSupermarketService(supermarkets), interceptors)
	r.PathPrefix(supermarketPath).Handler(supermarketHandler)

	purchasePath, purchaseHandler := service.NewPurchaseServiceHandler(service.NewPurchaseService(purchases), interceptors)
	r.PathPrefix(purchasePath).Handler(purchaseHandler)

	// REST API
	rest.NewHandler(items, supermarkets, purchases).RegisterRoutes(r)

	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler(store)).Methods(http.MethodGet)

	return middleware.RequestID(middleware.Logging(middleware.CORS(r)))
}

func healthHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, body := http.StatusOK, map[string]string{"status": "ok"}
		if err := store.Ping(ctx); err != nil {
			slog.Error("Health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
