package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cachekit/tagcache/internal/config"
	"github.com/cachekit/tagcache/pkg/logging"
	"github.com/cachekit/tagcache/pkg/tagcache"
)

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: os.Stderr,
	})

	// Single long-lived store handle, shared across all lookups.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")

	reader := tagcache.NewReader(tagcache.NewRedisStore(redisClient), cfg.Cache.ReaderConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", readyHandler(redisClient))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/cache/", lookupHandler(reader, logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("Starting tagcache server")

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// readyHandler reports whether the store connection is usable.
func readyHandler(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			http.Error(w, fmt.Sprintf("Redis unavailable: %v", err), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	}
}

// lookupHandler serves GET /cache/{cid}. A miss maps to 404, a corrupt
// entry to 500 and a store failure to 502; the reader itself encodes
// none of these policies.
func lookupHandler(reader *tagcache.Reader, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cid := strings.TrimPrefix(r.URL.Path, "/cache/")
		if cid == "" {
			http.Error(w, "missing cache identifier", http.StatusBadRequest)
			return
		}

		start := time.Now()
		payload, err := reader.Lookup(r.Context(), cid)
		duration := time.Since(start)

		switch {
		case errors.Is(err, tagcache.ErrCacheMiss):
			logger.Debug().Str("cid", cid).Dur("duration", duration).Msg("Cache miss")
			http.Error(w, "no cached value", http.StatusNotFound)
			return
		case errors.Is(err, tagcache.ErrCorruptPayload):
			logger.Warn().Err(err).Str("cid", cid).Msg("Corrupt cache entry")
			http.Error(w, "corrupt cache entry", http.StatusInternalServerError)
			return
		case err != nil:
			logger.Error().Err(err).Str("cid", cid).Msg("Store lookup failed")
			http.Error(w, fmt.Sprintf("store lookup failed: %v", err), http.StatusBadGateway)
			return
		}

		logger.Info().Str("cid", cid).Dur("duration", duration).Msg("Cache hit")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error().Err(err).Str("cid", cid).Msg("Failed to write response")
		}
	}
}
