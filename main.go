package main

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

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/travel-admin/apis"
	"github.com/supakorn-kn/travel-admin/env"
	"github.com/supakorn-kn/travel-admin/mongodb"
	"github.com/supakorn-kn/travel-admin/remote"
	"github.com/supakorn-kn/travel-admin/state"
	"github.com/supakorn-kn/travel-admin/views"
)

const shutdownTimeout = 10 * time.Second

func newLogger(config env.LogConfig) *slog.Logger {

	var level slog.Level
	_ = level.UnmarshalText([]byte(config.Level))

	opts := &slog.HandlerOptions{Level: level}
	if config.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func openSources(ctx context.Context, config *env.Env) (views.Sources, func(), error) {

	if config.Source.Kind == "mongodb" {

		conn, err := mongodb.InitConnection(ctx, config.MongoDB)
		if err != nil {
			return views.Sources{}, nil, fmt.Errorf("connect MongoDB: %w", err)
		}

		closeConn := func() {
			if err := conn.Disconnect(context.Background()); err != nil {
				slog.Warn("Disconnecting MongoDB failed", "error", err)
			}
		}

		mongoModels, err := views.NewMongoModels(ctx, conn)
		if err != nil {
			closeConn()
			return views.Sources{}, nil, fmt.Errorf("prepare collections: %w", err)
		}

		if config.Source.SeedFile != "" {

			data, err := views.LoadSeedFile(config.Source.SeedFile)
			if err == nil {
				err = mongoModels.Seed(ctx, data)
			}

			if err != nil {
				closeConn()
				return views.Sources{}, nil, fmt.Errorf("seed collections: %w", err)
			}
		}

		return mongoModels.Sources(), closeConn, nil
	}

	client, err := remote.NewClient(config.API)
	if err != nil {
		return views.Sources{}, nil, err
	}

	return views.RemoteSources(client), func() {}, nil
}

func openStore(ctx context.Context, config env.StoreConfig) (state.Store, func(), error) {

	if config.Kind == "redis" {

		store, err := state.ConnectRedis(ctx, config)
		if err != nil {
			return nil, nil, fmt.Errorf("connect Redis: %w", err)
		}

		return store, func() { _ = store.Close() }, nil
	}

	return state.NewMemoryStore(), func() {}, nil
}

func main() {

	config, err := env.GetEnv()
	if err != nil {
		slog.Error("Loading configuration failed", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(config.Log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources, closeSources, err := openSources(ctx, config)
	if err != nil {
		slog.Error("Opening list sources failed", "source", config.Source.Kind, "error", err)
		return
	}
	defer closeSources()

	store, closeStore, err := openStore(ctx, config.Store)
	if err != nil {
		slog.Error("Opening state store failed", "store", config.Store.Kind, "error", err)
		return
	}
	defer closeStore()

	registry, err := views.New(ctx, sources, views.Settings{
		PageSize:  config.List.PageSize,
		Delimiter: config.List.Delimiter,
		Store:     store,
		Logger:    slog.Default(),
	})
	if err != nil {
		slog.Error("Building lists failed", "error", err)
		return
	}

	registry.LoadAll(ctx)

	g := gin.Default()
	apis.RegisterListAPI(registry, g.Group("api/admin"))
	apis.RegisterDraftsAPI(state.NewDrafts(store), g.Group("api/drafts"))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.Port),
		Handler: g,
	}

	go func() {

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Shutting down server failed", "error", err)
		}
	}()

	slog.Info("Server started", "port", config.Server.Port, "source", config.Source.Kind, "store", config.Store.Kind)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Run server failed", "error", err)
	}
}
