package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/linguacards/internal/api"
	"github.com/vytor/linguacards/internal/catalog"
	"github.com/vytor/linguacards/internal/config"
	"github.com/vytor/linguacards/internal/db"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/repository/sqlite"
	"github.com/vytor/linguacards/internal/scheduler"
	"github.com/vytor/linguacards/internal/services"
	"github.com/vytor/linguacards/internal/session"
	"github.com/vytor/linguacards/web"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("LinguaCards Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("catalog_path=%s", cfg.CatalogPath)
	log.Debug("default_language=%s", cfg.DefaultLanguage)
	log.Debug("session_ttl=%s", cfg.SessionTTL)
	log.Debug("session_sweep_interval=%s", cfg.SessionSweepInterval)
	log.Debug("cors_allowed_origins=%v", cfg.CORSAllowedOrigins)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	languageRepo := sqlite.NewLanguageRepository(database.DB)
	phraseRepo := sqlite.NewPhraseRepository(database.DB)

	// Seed the catalog on first start
	ctx := logger.NewContext(context.Background(), log)
	if _, err := catalog.NewImporter(languageRepo, phraseRepo).Seed(ctx, cfg.CatalogPath); err != nil {
		log.Error("failed to seed catalog: %v", err)
		os.Exit(1)
	}

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(web.Templates())
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	// Initialize services
	sessions := session.NewStore()
	catalogService := services.NewCatalogService(languageRepo, phraseRepo)
	studyService := services.NewStudyService(catalogService, sessions, cfg.DefaultLanguage)

	sweeper := scheduler.New(sessions, cfg.SessionTTL, cfg.SessionSweepInterval)
	if err := sweeper.Start(); err != nil {
		log.Error("failed to start scheduler: %v", err)
		os.Exit(1)
	}

	srv := &api.Server{
		CatalogService:     catalogService,
		StudyService:       studyService,
		DB:                 database,
		Templates:          tmpl,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SessionTTL:         cfg.SessionTTL,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(web.Static()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping scheduler")
	sweeper.Stop()

	log.Info("live sessions dropped: %d", sessions.Len())
	log.Info("===========================================")
	log.Info("LinguaCards Server Stopped")
	log.Info("===========================================")
}
