package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"badminton-directory-backend/internal/api/handlers"
	"badminton-directory-backend/internal/api/routes"
	"badminton-directory-backend/internal/config"
	"badminton-directory-backend/internal/database"
	"badminton-directory-backend/internal/logger"
	"badminton-directory-backend/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	_ "badminton-directory-backend/docs" // This is needed for swag
)

//	@title			Badminton Directory API
//	@version		1.0
//	@description	Community directory of badminton courts, coaches and stringers with crowd-sourced prices and schedules, upvotes and ownership claims.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg, handlers.Version)
	if err != nil {
		logrus.WithError(err).Warn("Tracing disabled")
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if shutdownTracing != nil {
			if err := shutdownTracing(shutdownCtx); err != nil {
				logrus.WithError(err).Warn("Failed to flush traces")
			}
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.Fatal("Server error: ", err)
	}
	logrus.Info("Server stopped")
}
