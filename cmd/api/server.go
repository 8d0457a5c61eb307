package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/internal/domains/book/handler"
	"library-api/internal/domains/book/repository"
	"library-api/internal/domains/book/service"
	"library-api/internal/infrastructure/database"
	"library-api/internal/seed"
	"library-api/pkg/logger"
)

// Serve wires the dependency graph by hand (config → database → repository
// → service → handler), runs the seeder, and drives the HTTP server through
// a graceful shutdown.
func Serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment)

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := database.Connect(connectCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	bookRepo := repository.NewPostgresRepository(db.Pool)
	bookService := service.NewBookService(bookRepo)
	bookHandler := handler.NewBookHandler(bookService)

	if cfg.Seed.Enabled {
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.New(bookRepo, cfg.Seed.File).Run(seedCtx); err != nil {
			log.Warn().Err(err).Msg("Seeding failed")
		}
		cancelSeed()
	}

	router := SetupRouter(db, bookHandler)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().
			Str("port", cfg.App.Port).
			Str("environment", cfg.App.Environment).
			Msg("Server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
