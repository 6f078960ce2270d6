package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bikeflow.urbandata.org/internal/app"
	"bikeflow.urbandata.org/internal/bikeshare"
	"bikeflow.urbandata.org/internal/logging"
	"bikeflow.urbandata.org/internal/metrics"
	"bikeflow.urbandata.org/internal/restapi"
)

func main() {
	// Load .env into environment (ignore if missing); flags below default to
	// the environment values, so flags always win.
	_ = godotenv.Load()

	var cfg app.Config
	var dataCfg bikeshare.Config
	var apiKeysFlag string
	var refreshMinutes int

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "development"), "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envString("API_KEYS", "test"), "Comma separated API keys")
	flag.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 100), "Requests per second per API key (negative disables limiting)")
	flag.StringVar(&dataCfg.StationsURL, "stations-url", envString("STATIONS_URL", ""), "URL or file path for station metadata JSON")
	flag.StringVar(&dataCfg.TripsURL, "trips-url", envString("TRIPS_URL", ""), "URL or file path for trip records CSV")
	flag.IntVar(&refreshMinutes, "refresh-minutes", envInt("REFRESH_MINUTES", 0), "Reload interval for URL sources in minutes (0 disables)")
	flag.BoolVar(&dataCfg.Verbose, "verbose", envBool("VERBOSE", false), "Verbose data-load logging")
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	if apiKeysFlag != "" {
		cfg.APIKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(cfg.APIKeys[i])
		}
	}

	if dataCfg.StationsURL == "" || dataCfg.TripsURL == "" {
		logger.Error("both -stations-url and -trips-url (or STATIONS_URL/TRIPS_URL) must be set")
		os.Exit(1)
	}
	dataCfg.RefreshInterval = time.Duration(refreshMinutes) * time.Minute

	collector := metrics.NewCollector()

	manager, err := bikeshare.InitManager(dataCfg, logger, collector)
	if err != nil {
		logging.LogError(logger, "failed to initialize bikeshare manager", err)
		os.Exit(1)
	}
	manager.LogStatistics()

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Manager: manager,
	}
	api := restapi.NewRestAPI(application, collector)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.LogError(logger, "server shutdown failed", err)
		}
	case err := <-errChan:
		logging.LogError(logger, "server stopped", err)
	}

	manager.Shutdown()
	logger.Info("shutdown complete")
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return fallback
}
