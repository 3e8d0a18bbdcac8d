package container

import (
	"context"
	"fmt"
	"time"

	"ledger-bridge/internal/config"
	"ledger-bridge/internal/domains/payment/gateway"
	"ledger-bridge/internal/domains/payment/gateway/hyperswitch"
	"ledger-bridge/internal/domains/payment/gateway/juspay"
	"ledger-bridge/internal/domains/payment/handler"
	"ledger-bridge/internal/domains/payment/repository"
	"ledger-bridge/internal/domains/payment/service"
	"ledger-bridge/internal/infrastructure/database"
	"ledger-bridge/internal/infrastructure/platform"
	"ledger-bridge/pkg/logger"
)

// Container holds the application dependency graph. Initialization order is
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB // nil when webhook auditing is disabled

	JuspayGateway      gateway.JuspayGateway
	HyperswitchGateway gateway.HyperswitchGateway
	Ledger             platform.Ledger
	AuthStore          platform.AuthStore
	Credentials        service.CredentialStore

	WebhookLogRepo repository.WebhookLogRepository

	WebhookService     service.WebhookService
	CancelationService service.CancelationService

	WebhookHandler *handler.WebhookHandler
}

// NewContainer builds and initializes the dependency graph
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: Audit database (optional)
	if cfg.Database.Enabled {
		maxRetries, retryDelay, connectTimeout := cfg.Database.ConnectTimeouts()
		db := database.NewPostgresDB(&database.DBConfig{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			Username:        cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.Database,
			MaxConns:        int32(cfg.Database.MaxConns),
			MinConns:        int32(cfg.Database.MinConns),
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: 30 * time.Minute,
			MaxRetries:      maxRetries,
			RetryDelay:      retryDelay,
			ConnectTimeout:  connectTimeout,
		})

		connectCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := db.Connect(connectCtx); err != nil {
			return nil, fmt.Errorf("failed to connect audit database: %w", err)
		}
		c.DB = db
		c.WebhookLogRepo = repository.NewWebhookLogRepository(db.Pool)
	}

	// Step 3: Provider gateways
	juspayGateway, err := juspay.NewClient(juspay.NewConfig(
		cfg.Juspay.Username,
		cfg.Juspay.Password,
		cfg.Juspay.MerchantID,
		cfg.Juspay.APIURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create Juspay client: %w", err)
	}
	c.JuspayGateway = juspayGateway

	hyperswitchGateway, err := hyperswitch.NewClient(hyperswitch.NewConfig(
		cfg.Hyperswitch.APIKey,
		cfg.Hyperswitch.PublishableKey,
		cfg.Hyperswitch.ProfileID,
		cfg.Hyperswitch.APIURL,
	))
	if err != nil {
		// The cancelation flow is optional; run without it when unconfigured
		logger.Warn("Hyperswitch not configured, cancelation flow disabled", map[string]interface{}{
			"reason": err.Error(),
		})
	} else {
		c.HyperswitchGateway = hyperswitchGateway
	}

	// Step 4: Platform collaborators
	c.Ledger = platform.NewClient()
	c.AuthStore = platform.NewStaticAuthStore(map[string]string{
		cfg.Platform.APIURL: cfg.Platform.AppToken,
	})

	fallback := &service.ProviderCredentials{
		Username: cfg.Juspay.Username,
		Password: cfg.Juspay.Password,
	}
	byChannel := map[string]service.ProviderCredentials{}
	if cfg.Platform.ChannelID != "" {
		byChannel[cfg.Platform.ChannelID] = *fallback
	}
	c.Credentials = service.NewStaticCredentialStore(byChannel, fallback)

	// Step 5: Services
	c.WebhookService = service.NewWebhookService(
		c.JuspayGateway,
		c.Ledger,
		c.AuthStore,
		c.Credentials,
		c.WebhookLogRepo,
	)
	c.CancelationService = service.NewCancelationService(c.HyperswitchGateway)

	// Step 6: Handlers
	c.WebhookHandler = handler.NewWebhookHandler(c.WebhookService, c.CancelationService)

	return c, nil
}

// Cleanup releases container-held resources
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
