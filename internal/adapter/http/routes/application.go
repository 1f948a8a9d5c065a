package routes

import (
	"context"
	"fmt"
	"time"

	"vendor_registration/internal/adapter/http/handlers"
	"vendor_registration/internal/adapter/persistence/repository"
	"vendor_registration/internal/config"
	"vendor_registration/internal/domain/mapping"
	"vendor_registration/internal/domain/validation"
	"vendor_registration/internal/infrastructure/crm"
	"vendor_registration/internal/infrastructure/database"
	"vendor_registration/internal/infrastructure/email"
	"vendor_registration/internal/infrastructure/identity"
	"vendor_registration/internal/infrastructure/messaging"
	"vendor_registration/internal/infrastructure/storage"
	"vendor_registration/internal/usecase"
	"vendor_registration/internal/usecase/interfaces"
	"vendor_registration/pkg/logger"

	"go.uber.org/zap"
)

const (
	natsClientName      = "vendor-registration"
	bucketCheckTimeout  = 5 * time.Second
	defaultStoreTimeout = 5 * time.Second
)

// application holds the wired handlers and the resources to release on exit.
type application struct {
	handlers Handlers
	closers  []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{}
	log := logger.L()

	schema, err := config.LoadFormSchema(cfg.FormSchemaFile)
	if err != nil {
		return nil, err
	}
	rules, err := schema.RuleSet()
	if err != nil {
		return nil, err
	}

	store, closeStore, err := newTTLStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		app.closers = append(app.closers, closeStore)
	}

	if !cfg.ZohoConfigured() {
		log.Warn("[bootstrap] zoho credentials missing, registrations will fail authentication")
	}
	exchanger := identity.NewZohoTokenExchanger(cfg.Zoho.AccountsURL, cfg.Zoho.ClientID, cfg.Zoho.ClientSecret, cfg.Zoho.RefreshToken, cfg.Zoho.APITimeout)

	notifier, err := email.NewResendNotificationSender(email.SenderConfig{
		APIKey:                    cfg.Email.APIKey,
		APIURL:                    cfg.Email.APIURL,
		From:                      cfg.Email.From,
		ReplyTo:                   cfg.Email.ReplyTo,
		AdminEmail:                cfg.Email.AdminEmail,
		VendorConfirmationSubject: schema.Messages.VendorConfirmationSubject,
		AdminAlertSubject:         schema.Messages.AdminAlertSubject,
	}, cfg.Zoho.APITimeout)
	if err != nil {
		app.Close()
		return nil, err
	}

	ipWindow := usecase.RateWindow{Window: cfg.RateLimit.IPWindow, Max: cfg.RateLimit.IPMax}
	emailWindow := usecase.RateWindow{Window: cfg.RateLimit.EmailWindow, Max: cfg.RateLimit.EmailMax}

	deps := usecase.RegistrationDeps{
		Engine:   validation.NewEngine(rules, cfg.FileRules()),
		Mapper:   mapping.NewMapper(schema.FieldMappings(), schema.DerivedFields(), nil),
		Limiter:  usecase.NewRateLimiter(store, ipWindow, emailWindow),
		Tokens:   usecase.NewTokenCache(store, exchanger, cfg.Zoho.TokenCacheTTL),
		CRM:      crm.NewZohoCRMGateway(cfg.Zoho.APIDomain, cfg.Zoho.Module, cfg.Zoho.APITimeout),
		Notifier: notifier,
		Archive:  newDocumentArchive(ctx, cfg.Minio),
	}

	if events, closeEvents := newEventPublisher(cfg.Nats); events != nil {
		deps.Events = events
		app.closers = append(app.closers, closeEvents)
	}

	registration := usecase.NewVendorRegistrationUseCase(deps, usecase.RegistrationOptions{
		RateLimitEnabled:   cfg.RateLimit.Enabled,
		DuplicateCheck:     cfg.Features.DuplicateCheck,
		EmailNotifications: cfg.Features.EmailNotifications,
		CallTimeout:        cfg.Zoho.APITimeout,
	})
	health := usecase.NewHealthUseCase(store, usecase.HealthInputs{
		CRMConfigured:      cfg.ZohoConfigured(),
		EmailKeyPresent:    cfg.Email.APIKey != "",
		EmailNotifications: cfg.Features.EmailNotifications,
		RateLimitEnabled:   cfg.RateLimit.Enabled,
		IPLimit:            ipWindow,
		EmailLimit:         emailWindow,
	})

	app.handlers = Handlers{
		Registration: handlers.NewVendorRegistrationHandler(registration, handlers.VendorRegistrationOptions{
			Messages:     schema.Messages,
			ExposeDebug:  !cfg.IsProduction(),
			MaxBodyBytes: maxBodyBytes(cfg),
		}),
		Health: handlers.NewHealthHandler(health),
	}
	return app, nil
}

// newTTLStore selects the backend shared by the token cache and the rate
// limiter. The returned func, when not nil, releases the connection.
func newTTLStore(ctx context.Context, cfg config.StoreConfig) (interfaces.ITTLStore, func(), error) {
	log := logger.L()

	switch cfg.Driver {
	case config.StoreDriverRedis:
		rdb, err := database.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("[bootstrap] ttl store: redis", zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisTTLStore(rdb), func() { _ = rdb.Close() }, nil

	case config.StoreDriverDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewDynamoTTLStore(ddb, cfg.TTLTable)
		pctx, cancel := context.WithTimeout(ctx, defaultStoreTimeout)
		defer cancel()
		if err := store.Ping(pctx); err != nil {
			log.Warn("[bootstrap] dynamodb ttl table not reachable yet", zap.String("table", cfg.TTLTable), zap.Error(err))
		}
		log.Info("[bootstrap] ttl store: dynamodb", zap.String("table", cfg.TTLTable))
		return store, nil, nil

	case config.StoreDriverMemory:
		log.Warn("[bootstrap] ttl store: memory, counters and tokens are not shared between instances")
		return repository.NewMemoryTTLStore(), nil, nil
	}

	return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Driver)
}

// newDocumentArchive returns nil when archiving is off or the bucket cannot
// be prepared; registrations then proceed without an archive copy.
func newDocumentArchive(ctx context.Context, cfg config.MinioConfig) interfaces.IDocumentArchive {
	if cfg.Endpoint == "" {
		return nil
	}
	log := logger.L()

	archive, err := storage.NewMinioDocumentArchive(storage.MinioConfig{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		Region:    cfg.Region,
		UseSSL:    cfg.UseSSL,
	})
	if err != nil {
		log.Warn("[bootstrap] document archive disabled", zap.Error(err))
		return nil
	}

	bctx, cancel := context.WithTimeout(ctx, bucketCheckTimeout)
	defer cancel()
	if err := archive.EnsureBucket(bctx); err != nil {
		log.Warn("[bootstrap] document archive disabled", zap.String("bucket", cfg.Bucket), zap.Error(err))
		return nil
	}
	log.Info("[bootstrap] document archive enabled", zap.String("endpoint", cfg.Endpoint), zap.String("bucket", cfg.Bucket))
	return archive
}

func newEventPublisher(cfg config.NatsConfig) (interfaces.IEventPublisher, func()) {
	if cfg.URL == "" {
		return nil, nil
	}
	log := logger.L()

	nc, err := messaging.ConnectNats(cfg.URL, natsClientName)
	if err != nil {
		log.Warn("[bootstrap] registration events disabled", zap.Error(err))
		return nil, nil
	}
	publisher := messaging.NewNatsEventPublisher(nc, cfg.Subject)
	log.Info("[bootstrap] registration events enabled", zap.String("subject", cfg.Subject))
	return publisher, func() { _ = publisher.Close() }
}
