// Package di wires the application dependency graph.
package di

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shizuku355/suiquest-jp/internal/handler"
	"github.com/shizuku355/suiquest-jp/internal/ledger"
	"github.com/shizuku355/suiquest-jp/internal/repository"
	"github.com/shizuku355/suiquest-jp/internal/service"
	"github.com/shizuku355/suiquest-jp/pkg/config"
	"github.com/shizuku355/suiquest-jp/pkg/kafka"
	"github.com/shizuku355/suiquest-jp/pkg/logger"
	"github.com/shizuku355/suiquest-jp/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	Ledger   *ledger.Client
	Redis    *redis.Client
	Producer *kafka.Producer

	EventRepository repository.EventRepository
	PassRepository  repository.PassRepository

	EventService  service.EventService
	MintService   service.MintService
	WalletService service.WalletService
	AdminService  service.AdminService

	EventHandler  *handler.EventHandler
	MintHandler   *handler.MintHandler
	WalletHandler *handler.WalletHandler
	AdminHandler  *handler.AdminHandler
	HealthHandler *handler.HealthHandler
}

// NewContainer builds the dependency graph. Redis and Kafka are
// optional: when disabled the service reads the ledger directly and
// skips activity publishing.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	c.Ledger = ledger.NewClient(&ledger.Config{
		RPCURL:  cfg.Ledger.RPCURL,
		Timeout: cfg.Ledger.Timeout,
	})

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(ctx, &redis.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			MaxRetries:   3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = client
	}

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(ctx, &kafka.ProducerConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize kafka producer: %w", err)
		}
		c.Producer = producer
	}

	ledgerRepo := repository.NewLedgerEventRepository(c.Ledger, cfg.Ledger.PackageID, cfg.Ledger.QueryLimit)
	if c.Redis != nil {
		c.EventRepository = repository.NewCachedEventRepository(ledgerRepo, c.Redis)
	} else {
		c.EventRepository = ledgerRepo
	}
	c.PassRepository = repository.NewLedgerPassRepository(c.Ledger, cfg.Ledger.PassType)

	var publisher service.ActivityPublisher
	if c.Producer != nil {
		publisher = c.Producer
	}

	c.EventService = service.NewEventService(c.EventRepository)
	c.MintService = service.NewMintService(c.EventRepository, c.Ledger, publisher, service.MintConfig{
		PackageID:     cfg.Ledger.PackageID,
		ClockObjectID: cfg.Ledger.ClockObjectID,
		ActivityTopic: cfg.Kafka.Topic,
	})
	c.WalletService = service.NewWalletService(c.PassRepository, c.Ledger)
	c.AdminService = service.NewAdminService(c.EventRepository, cfg.Ledger.PackageID)

	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.MintHandler = handler.NewMintHandler(c.MintService)
	c.WalletHandler = handler.NewWalletHandler(c.WalletService)
	c.AdminHandler = handler.NewAdminHandler(c.AdminService)

	checks := map[string]handler.HealthChecker{
		"ledger": c.Ledger,
	}
	if c.Redis != nil {
		checks["redis"] = c.Redis
	}
	c.HealthHandler = handler.NewHealthHandler(cfg.App.Name, checks)

	return c, nil
}

// Close releases held connections
func (c *Container) Close() {
	if c.Producer != nil {
		if err := c.Producer.Close(); err != nil {
			logger.Get().Warn("failed to close kafka producer", zap.Error(err))
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Get().Warn("failed to close redis client", zap.Error(err))
		}
	}
}
