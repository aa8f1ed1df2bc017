package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/di"
	"github.com/shizuku355/suiquest-jp/pkg/config"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/middleware"
	"github.com/shizuku355/suiquest-jp/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}); err != nil {
		logger.Get().Fatal("failed to initialize telemetry", zap.Error(err))
	}

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("failed to build container", zap.Error(err))
	}
	defer container.Close()

	router := setupRouter(cfg, container)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Get().Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Get().Error("forced shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Get().Warn("telemetry shutdown failed", zap.Error(err))
	}

	logger.Get().Info("server stopped")
}

func setupRouter(cfg *config.Config, c *di.Container) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(telemetry.TracingMiddleware(cfg.App.Name))

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.WalletAddress(&middleware.WalletConfig{}))
	{
		v1.GET("/events", c.EventHandler.ListEvents)
		v1.GET("/events/:slug", c.EventHandler.GetEvent)
		v1.POST("/events/:slug/mint", c.MintHandler.PrepareMint)
		v1.POST("/transactions", c.MintHandler.RelayTransaction)
		v1.GET("/wallets/:address/passes", c.WalletHandler.ListPasses)
		v1.GET("/wallets/:address/balance", c.WalletHandler.GetBalance)
	}

	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.WalletAddress(&middleware.WalletConfig{Required: true}))
	admin.Use(middleware.RequireAdmin(&middleware.AdminConfig{Addresses: cfg.Admin.Normalized()}))
	{
		admin.POST("/events", c.AdminHandler.CreateEvent)
		admin.PUT("/events/:id", c.AdminHandler.UpdateEvent)
	}

	return router
}
