// README: Entry point; loads config, wires providers and stores, starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"roam/internal/config"
	httptransport "roam/internal/http"
	"roam/internal/infra"
	"roam/internal/llm"
	"roam/internal/maps"
	"roam/internal/modules/archive"
	"roam/internal/modules/planner"
)

// sessionTTL bounds how long an idle Redis-backed session survives.
const sessionTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := llm.NewRegistry()
	factory := llm.NewFactory(registry)
	defer factory.Close()

	var store planner.Store
	if cfg.Redis.Addr != "" {
		store = planner.NewRedisStore(infra.NewRedis(cfg.Redis.Addr), sessionTTL)
		log.Info("session store", "backend", "redis", "addr", cfg.Redis.Addr)
	} else {
		store = planner.NewMemoryStore()
		log.Info("session store", "backend", "memory")
	}

	plannerSvc := planner.NewService(store, factory, registry, planner.Defaults{
		Provider:    cfg.Planner.DefaultProvider,
		Model:       cfg.Planner.DefaultModel,
		Temperature: cfg.Planner.Temperature,
		MaxTokens:   cfg.Planner.MaxTokens,
	})

	if cfg.Planner.SaveItineraries {
		var archiveStore *archive.Store
		if cfg.DB.DSN != "" {
			pool, err := infra.NewDB(ctx, cfg.DB.DSN)
			if err != nil {
				log.Fatal("database init", "err", err)
			}
			defer pool.Close()
			archiveStore = archive.NewStore(pool)
		}
		writer := archive.NewFileWriter(cfg.Planner.OutputDir)
		plannerSvc.SetArchiver(archive.NewService(writer, archiveStore))
	}

	var placesSvc *maps.PlacesService
	var routesSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		if placesSvc, err = maps.NewPlacesService(cfg.Maps.APIKey); err != nil {
			log.Fatal("maps init", "err", err)
		}
		if routesSvc, err = maps.NewRouteService(cfg.Maps.APIKey); err != nil {
			log.Fatal("maps init", "err", err)
		}
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Planner: plannerSvc,
		Places:  placesSvc,
		Routes:  routesSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("listening", "addr", cfg.HTTP.Addr, "default_provider", cfg.Planner.DefaultProvider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("http server", "err", err)
	}
}
