package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/edgeviz/edgeviz/pkg/buildinfo"
	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/pipeline"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// serveCommand creates the serve command running the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		redisPass string
		redisDB   int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

Endpoints:

  POST /render      render a network document; body: {"network": ..., "options": ...}
  GET  /strategies  list edge strategy names
  GET  /palettes    list palette names
  GET  /healthz     liveness check
  GET  /version     build information

Without --redis the service caches to the local file cache; with it,
layout and artifact caches are shared across instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisAddr, redisPass, redisDB, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for shared caching (host:port)")
	cmd.Flags().StringVar(&redisPass, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisAddr, redisPass string, redisDB int, noCache bool) error {
	store, err := c.serveCache(ctx, redisAddr, redisPass, redisDB, noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServeHandler(runner, c.Logger.StandardLog()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("render service listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// serveCache picks the cache backend for the service.
func (c *CLI) serveCache(ctx context.Context, redisAddr, redisPass string, redisDB int, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		store, err := cache.NewRedisCache(ctx, redisAddr, redisPass, redisDB)
		if err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", redisAddr, err)
		}
		c.Logger.Info("using redis cache", "addr", redisAddr)
		return store, nil
	}
	return newCache(false)
}

// renderRequest is the POST /render body.
type renderRequest struct {
	Network network.Document `json:"network"`
	Options pipeline.Options `json:"options"`
}

// renderResponse is the POST /render reply. Artifact bytes serialize as
// base64 per encoding/json.
type renderResponse struct {
	NetworkHash string             `json:"network_hash"`
	Artifacts   map[string][]byte  `json:"artifacts"`
	Stats       pipeline.Stats     `json:"stats"`
	CacheInfo   pipeline.CacheInfo `json:"cache_info"`
}

// newServeHandler builds the service router.
func newServeHandler(runner *pipeline.Runner, logger middleware.LoggerInterface) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger}))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/version", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": buildinfo.Version,
			"commit":  buildinfo.Commit,
		})
	})
	r.Get("/strategies", func(w http.ResponseWriter, req *http.Request) {
		names := make([]string, 0, len(pipeline.ValidStrategies))
		for name := range pipeline.ValidStrategies {
			names = append(names, name)
		}
		sort.Strings(names)
		writeJSON(w, http.StatusOK, map[string][]string{"strategies": names})
	})
	r.Get("/palettes", func(w http.ResponseWriter, req *http.Request) {
		names := palette.Names()
		sort.Strings(names)
		writeJSON(w, http.StatusOK, map[string][]string{"palettes": names})
	})
	r.Post("/render", func(w http.ResponseWriter, req *http.Request) {
		var body renderRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
			return
		}
		result, err := runner.Execute(req.Context(), body.Network, body.Options)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		writeJSON(w, http.StatusOK, renderResponse{
			NetworkHash: result.NetworkHash,
			Artifacts:   result.Artifacts,
			Stats:       result.Stats,
			CacheInfo:   result.CacheInfo,
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
