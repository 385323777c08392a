package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"pet-care-platform/internal/adapters/auth/token"
	"pet-care-platform/internal/adapters/bio/petbio"
	pg "pet-care-platform/internal/adapters/storage/postgres"
	"pet-care-platform/internal/config"
	"pet-care-platform/internal/platform/logger"
	"pet-care-platform/internal/ports/auth"
	"pet-care-platform/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env opcional; env real siempre gana

	cfg := config.Load()
	log := logger.NewFromEnv()

	var (
		verifier auth.AuthVerifier
		issuer   auth.TokenIssuer
	)
	if cfg.TokenSecret != "" {
		mgr, err := token.NewManager(cfg.TokenSecret, cfg.TokenTTL)
		if err != nil {
			log.Error("token manager init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = mgr
		issuer = mgr
	} else {
		log.Warn("TOKEN_SECRET not set, running in dev auth mode", nil)
	}

	bioClient, err := petbio.NewClient(petbio.Config{
		BaseURL: cfg.BioBaseURL,
		APIKey:  cfg.BioAPIKey,
		Model:   cfg.BioModel,
		Timeout: cfg.BioTimeout,
	})
	if err != nil {
		log.Error("bio client init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	}

	r, err := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		TokenIssuer:  issuer,
		DB:           db,
		DataDir:      cfg.DataDir,
		BioGenerator: petbio.NewGenerator(bioClient, log),
		Logger:       log,
	})
	if err != nil {
		log.Error("router init failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
