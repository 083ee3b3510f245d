// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/logicbyfred/gallery-store/internal/domain/contact"
	"github.com/logicbyfred/gallery-store/internal/domain/viewmode"
	"github.com/logicbyfred/gallery-store/internal/infrastructure/database/postgres"
	"github.com/logicbyfred/gallery-store/internal/infrastructure/database/redis"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http"
	"github.com/logicbyfred/gallery-store/internal/interfaces/http/routes"
	"github.com/logicbyfred/gallery-store/internal/pkg/auth"
	"github.com/logicbyfred/gallery-store/internal/pkg/email"
	"github.com/logicbyfred/gallery-store/internal/pkg/logger"
	"github.com/logicbyfred/gallery-store/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting server")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Connect to database
	db, err := postgres.NewConnection(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Run database migrations
	migration := postgres.NewMigration(db.GetDB(), log)

	if err := migration.RunAutoMigrations(); err != nil {
		log.WithError(err).Fatal("Database migration failed")
	}

	if err := migration.CreateIndexes(); err != nil {
		log.WithError(err).Warn("Index creation failed")
	}

	if cfg.Catalog.SeedOnStart {
		if err := migration.SeedCatalog(ctx); err != nil {
			log.WithError(err).Warn("Catalog seeding failed")
		}
	}

	if cfg.IsDevelopment() {
		if err := migration.GetTableInfo(); err != nil {
			log.WithError(err).Warn("Failed to read table info")
		}
	}

	rdb := redisClient.GetClient()

	// Domain services
	products := catalog.NewCachedCatalog(catalog.NewRepository(db.GetDB()), rdb, cfg.Catalog.CacheTTL, log)
	cartService := cart.NewService(cart.NewStore(rdb, cfg.Session.TTL), products, log)
	viewService := viewmode.NewService(
		viewmode.NewStore(rdb, cfg.Session.TTL),
		products,
		viewmode.DetectionPolicy{TreatLowEndAsUnsupported: cfg.Render.TreatLowEndAsUnsupported},
		log,
	)
	contactService := contact.NewService(
		contact.NewGormRepository(db.GetDB()),
		email.NewEmailService(cfg, log),
		log,
	)

	server := http.NewServer(cfg, &routes.Dependencies{
		Config:   cfg,
		Logger:   log,
		JWT:      auth.NewJWTManager(cfg),
		Catalog:  products,
		Cart:     cartService,
		ViewMode: viewService,
		Contact:  contactService,
		Sheets:   pdf.NewService(cfg),
	}, rdb, map[string]http.HealthChecker{
		"database": db,
		"redis":    redisClient,
	})

	log.Info("All systems operational")

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}
