package bootstrap

import (
	"context"
	"fmt"
	"rewards-server/internal/config"
	"rewards-server/internal/events"
	"rewards-server/internal/jobs/scheduler"
	"rewards-server/internal/observability"
	"rewards-server/internal/ratelimit"
	"rewards-server/internal/rules"
	"rewards-server/internal/rules/engine"
	"rewards-server/internal/store"

	attributionHandler "rewards-server/internal/attribution/handler"
	attributionProcessor "rewards-server/internal/attribution/processor"
	authHandler "rewards-server/internal/auth/handler"
	authProcessor "rewards-server/internal/auth/processor"
	campaignHandler "rewards-server/internal/campaign/handler"
	campaignProcessor "rewards-server/internal/campaign/processor"
	kafkaClient "rewards-server/internal/clients/kafka"
	"rewards-server/internal/clients/ledger"
	redisClient "rewards-server/internal/clients/redis"
	scheduledJobs "rewards-server/internal/jobs/scheduler/jobs"
	referralHandler "rewards-server/internal/referral/handler"
	referralProcessor "rewards-server/internal/referral/processor"
	rewardsHandler "rewards-server/internal/rewards/handler"
	rewardsProcessor "rewards-server/internal/rewards/processor"
	settlementProcessor "rewards-server/internal/settlement/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Logger  *observability.Logger
	Metrics *observability.RewardsMetrics

	// Processors
	AuthProcessor       *authProcessor.AuthProcessor
	RewardsProcessor    *rewardsProcessor.RewardsProcessor
	SettlementProcessor *settlementProcessor.SettlementProcessor

	// Handlers
	AuthHandler        authHandler.Handler
	AttributionHandler attributionHandler.Handler
	ReferralHandler    referralHandler.Handler
	CampaignHandler    campaignHandler.Handler
	RewardsHandler     rewardsHandler.Handler

	// Middleware
	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	Ledger        *ledger.Client
	Redis         *redisClient.Client

	config *config.Config
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.Rewards(),
		config:  cfg,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Kafka producer; without brokers events are dropped
	var producer events.EventProducer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS not set, domain events are disabled")
	}
	publisher := events.NewPublisher(producer, logger)

	// Initialize auth processor and handler
	deps.AuthProcessor = authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(deps.AuthProcessor, logger)

	// Initialize referral processor and handler
	referrerCache := referralProcessor.NewLRUCache(cfg.Rewards.ReferralCacheSize, cfg.Rewards.ReferralCacheTTL)
	referralProc := referralProcessor.New(&deps.Store, referrerCache, logger, cfg.Rewards.ReferralMaxDepth)
	deps.ReferralHandler = referralHandler.New(referralProc, logger)

	// Initialize attribution processor and handler
	attributionProc := attributionProcessor.New(&deps.Store, referralProc, logger, cfg.Rewards.TouchpointLookback)
	deps.AttributionHandler = attributionHandler.New(attributionProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize rule engine and rewards processor
	ruleEngine := engine.New(&deps.Store, rules.NewCalculator(nil), logger, engine.WithMetrics(deps.Metrics))
	deps.RewardsProcessor = rewardsProcessor.New(&deps.Store, attributionProc, referralProc, ruleEngine, publisher, logger, deps.Metrics)
	deps.RewardsHandler = rewardsHandler.New(deps.RewardsProcessor, logger)

	return deps, nil
}

// InitializeRateLimit connects to Redis and builds the merchant API rate limiter.
// It is a no-op when Redis or the request budget is not configured.
func (d *Dependencies) InitializeRateLimit(ctx context.Context) error {
	if d.config.Redis.Host == "" || d.config.RateLimit.RequestsPerMinute == 0 {
		d.Logger.Warn(ctx, "REDIS_HOST or RATE_LIMIT_RPM not set, API rate limiting is disabled")
		return nil
	}

	client, err := redisClient.NewClient(ctx, d.config.Redis.Host, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize rate limiter: %w", err)
	}
	d.Redis = client
	d.RateLimiter = ratelimit.NewService(client, d.config.RateLimit.RequestsPerMinute, d.Logger)
	return nil
}

// InitializeSettlement connects the ledger client and builds the settlement processor.
// It is a no-op when no ledger is configured.
func (d *Dependencies) InitializeSettlement(ctx context.Context) error {
	if !d.config.Ledger.Enabled() {
		d.Logger.Warn(ctx, "ledger not configured, settlement is disabled")
		return nil
	}

	client, err := ledger.NewClient(ctx, ledger.Config{
		RPCURL:          d.config.Ledger.RPCURL,
		ContractAddress: d.config.Ledger.ContractAddress,
		PrivateKey:      d.config.Ledger.PrivateKey,
		TxTimeout:       d.config.Ledger.TxTimeout,
	}, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize ledger client: %w", err)
	}
	d.Ledger = client

	var producer events.EventProducer
	if d.KafkaProducer != nil {
		producer = d.KafkaProducer
	}

	d.SettlementProcessor = settlementProcessor.New(
		&d.Store,
		&d.Store,
		&d.Store,
		client,
		events.NewPublisher(producer, d.Logger),
		settlementProcessor.Config{
			BatchSize:     d.config.Settlement.BatchSize,
			StaleAfter:    d.config.Settlement.StaleAfter,
			TokenDecimals: d.config.Ledger.TokenDecimals,
		},
		d.Logger,
		d.Metrics,
	)
	return nil
}

// ScheduledJobs returns the periodic jobs the worker runs
func (d *Dependencies) ScheduledJobs() []scheduler.Job {
	scheduled := []scheduler.Job{
		scheduledJobs.NewInteractionBatchJob(d.RewardsProcessor, d.Logger, d.config.Batch.Interval, d.config.Batch.MinAge, d.config.Batch.Size),
		scheduledJobs.NewTouchpointSweepJob(&d.Store, d.Logger, 0, scheduledJobs.DefaultTouchpointGrace),
	}
	if d.SettlementProcessor != nil {
		scheduled = append(scheduled, scheduledJobs.NewSettlementJob(d.SettlementProcessor, d.Logger, d.config.Settlement.Interval))
	}
	return scheduled
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.Ledger != nil {
		d.Ledger.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
	d.Store.Close()
}
