package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genads/genads-api/pkg/config"
	"github.com/genads/genads-api/pkg/handlers"
	"github.com/genads/genads-api/pkg/services"
	"github.com/genads/genads-api/pkg/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetOutput(gin.DefaultWriter)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("Starting GenAds API...")

	cfg := config.LoadConfig()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", cfg.UploadDir, err)
	}

	deps := handlers.Deps{
		Tokens:    services.NewTokenService(cfg.JwtSecret),
		Passwords: services.NewPasswordService(),
	}

	// The service starts even when the store is unreachable or unconfigured;
	// the /test diagnostic reports the state and write endpoints refuse.
	st, err := store.Open(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Warnf("Record store unavailable: %v", err)
	} else {
		defer st.Close()
		deps.Users = st
		deps.Videos = st
		deps.Diag = st
	}

	router := handlers.New(cfg, deps).Router()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("Server listening on %s:%s", cfg.Host, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully.")
}
