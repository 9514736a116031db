package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/admin"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/api"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/auth"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/config"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/meeting"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/middleware"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/seed"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.WithError(err).Fatal("failed to create db directory")
	}

	bboltStore, err := store.NewBBoltStore(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("failed to open bbolt store")
	}
	defer bboltStore.Close()

	tokens := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	directory := users.NewService(bboltStore)
	meetings := meeting.NewService(bboltStore, directory, meeting.Options{
		MeetingLinkBase:     cfg.MeetingLinkBase,
		VirtualPitchBaseURL: cfg.VirtualPitchBaseURL,
	})

	if err := seed.LoadFromFile(cfg.SeedFile, bboltStore, directory.HashPassword); err != nil {
		log.WithError(err).Fatal("failed to seed data")
	}

	swagger, err := api.GetSwagger()
	if err != nil {
		log.WithError(err).Fatal("failed to load embedded swagger spec")
	}

	validator, err := middleware.NewOpenAPIValidator(swagger, auth.AuthenticationFunc(tokens))
	if err != nil {
		log.WithError(err).Fatal("failed to create openapi validator")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.NewCORS(cfg.CORSOrigins))
	r.Use(auth.Middleware(tokens))
	r.Use(middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	r.Use(validator)

	handler := api.NewHandler(meetings, directory, tokens)
	api.RegisterHandlers(r, handler)

	srv := &http.Server{
		Handler: r,
		Addr:    net.JoinHostPort("0.0.0.0", cfg.Port),
	}

	adminRouter := gin.New()
	adminRouter.Use(gin.Recovery())

	adminHandler := admin.NewHandler(bboltStore)
	admin.RegisterHandlers(adminRouter, adminHandler)

	adminSrv := &http.Server{
		Handler: adminRouter,
		Addr:    net.JoinHostPort("0.0.0.0", cfg.AdminPort),
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	go func() {
		log.WithField("addr", adminSrv.Addr).Info("starting admin server")
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("admin server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown error")
	}
	if err := adminSrv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("admin server shutdown error")
	}
}
