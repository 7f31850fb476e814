package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/wrongbook-app/wrongbook/internal/config"
	"github.com/wrongbook-app/wrongbook/internal/database"
	"github.com/wrongbook-app/wrongbook/internal/record"
	"github.com/wrongbook-app/wrongbook/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	handler := server.NewPlanHandler(record.NewDBRepository(db), record.NewDBPlanRepository(db))
	mux := http.NewServeMux()
	handler.Register(mux)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Starting server", "addr", addr)
	return http.ListenAndServe(addr, corsMiddleware(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(mux, &http2.Server{})))
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("WRONGBOOK_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
