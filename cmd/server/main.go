package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/matchedbet/internal/adapter/http"
	"github.com/iho/matchedbet/internal/adapter/http/handler"
	"github.com/iho/matchedbet/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/matchedbet/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/matchedbet/internal/adapter/repository/redis"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/config"
	"github.com/iho/matchedbet/internal/infrastructure/eventpublisher"
	"github.com/iho/matchedbet/internal/infrastructure/logger"
	"github.com/iho/matchedbet/internal/infrastructure/metrics"
	"github.com/iho/matchedbet/internal/infrastructure/postgres"
	"github.com/iho/matchedbet/internal/infrastructure/redis"
	"github.com/iho/matchedbet/internal/usecase"
)

const rateLimiterCleanupInterval = time.Hour

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(loggerConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(reg)

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	bookmakerRepo := postgresRepo.NewBookmakerRepository(pool)
	offerRepo := postgresRepo.NewOfferRepository(pool)
	matchRepo := postgresRepo.NewMatchRepository(pool)
	betRepo := postgresRepo.NewBetRepository(pool)
	accumulatorRepo := postgresRepo.NewAccumulatorRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	retrier := postgresRepo.NewRetrier(postgresRepo.RetrierConfig{
		MaxRetries:      cfg.SettlementMaxRetries,
		InitialInterval: cfg.SettlementRetryBackoff,
	}, appMetrics, log)

	// The session ledger starts at zero on every boot.
	balanceUC := usecase.NewBalanceUseCase(nil, appMetrics, log)
	stopLedger, ledgerDone := startLedger(balanceUC)
	defer stopLedger()

	// Initialize use cases
	bookmakerUC := usecase.NewBookmakerUseCase(usecase.BookmakerUseCaseConfig{
		BookmakerRepo:   bookmakerRepo,
		OfferRepo:       offerRepo,
		AccumulatorRepo: accumulatorRepo,
		BetRepo:         betRepo,
		MatchRepo:       matchRepo,
		Balances:        balanceUC,
		IDGen:           idGen,
		Cache:           cache,
		CacheTTL:        cfg.CacheTTL,
	})
	offerUC := usecase.NewOfferUseCase(usecase.OfferUseCaseConfig{
		OfferRepo:       offerRepo,
		BookmakerRepo:   bookmakerRepo,
		AccumulatorRepo: accumulatorRepo,
		BetRepo:         betRepo,
		MatchRepo:       matchRepo,
		IDGen:           idGen,
		Cache:           cache,
	})
	matchUC := usecase.NewMatchUseCase(matchRepo, idGen, cache)
	betUC := usecase.NewBetUseCase(betRepo, offerRepo, matchRepo, idGen, cache)
	accumulatorUC := usecase.NewAccumulatorUseCase(txManager, accumulatorRepo, betRepo, offerRepo, matchRepo, idGen, cache)
	settlementUC := usecase.NewSettlementUseCase(usecase.SettlementUseCaseConfig{
		TxManager:       txManager,
		BetRepo:         betRepo,
		AccumulatorRepo: accumulatorRepo,
		MatchRepo:       matchRepo,
		OutboxRepo:      outboxRepo,
		Retrier:         retrier,
		Balances:        balanceUC,
		IDGen:           idGen,
		Metrics:         appMetrics,
		Cache:           cache,
		Logger:          log,
		Commission:      cfg.ExchangeCommission,
	})

	// Settlement events
	publisher, closePublisher := newPublisher(cfg, log)
	defer closePublisher.Close()
	events := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  publisher,
		Observer:   appMetrics,
		Logger:     log,
		Interval:   cfg.OutboxInterval,
		Retention:  7 * 24 * time.Hour,
	})
	go func() {
		if err := events.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, appMetrics)
	go cleanupLimiters(ctx, rateLimiter)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		BookmakerHandler:   handler.NewBookmakerHandler(bookmakerUC),
		OfferHandler:       handler.NewOfferHandler(offerUC),
		MatchHandler:       handler.NewMatchHandler(matchUC),
		BetHandler:         handler.NewBetHandler(betUC),
		AccumulatorHandler: handler.NewAccumulatorHandler(accumulatorUC),
		BalanceHandler:     handler.NewBalanceHandler(balanceUC),
		SettlementHandler:  handler.NewSettlementHandler(settlementUC),
		DashboardHandler:   handler.NewDashboardHandler(balanceUC, handler.NewDashboardStats(bookmakerUC, betUC)),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient, balanceUC, publisherStatus(publisher)),
		Logger:             log,
		Metrics:            appMetrics,
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		RateLimiter:        rateLimiter,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
	})

	server := &http.Server{
		Addr:         serverAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case err := <-ledgerDone:
		return fmt.Errorf("balance ledger stopped: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	ledger, err := drainLedger(shutdownCtx, balanceUC, stopLedger, ledgerDone)
	if err != nil {
		return fmt.Errorf("read final balances: %w", err)
	}
	log.Info().
		Str("exchange", ledger.ExchangeBalance.String()).
		Str("bookmaker", ledger.BookmakerBalance.String()).
		Str("profit", ledger.Profit.String()).
		Msg("server stopped")

	return nil
}

// startLedger runs the session ledger on its own context rather than the
// signal context, so requests still draining at shutdown can reach it.
func startLedger(balances *usecase.BalanceUseCase) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- balances.Run(ctx) }()
	return cancel, done
}

// drainLedger reads the final totals, then stops the ledger and waits for it.
// Call it only after the HTTP server has shut down.
func drainLedger(ctx context.Context, balances *usecase.BalanceUseCase, stop context.CancelFunc, done <-chan error) (domain.Ledger, error) {
	ledger, err := balances.Balances(ctx)
	stop()
	<-done
	return ledger, err
}

func loggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	}
}

func serverAddr(port string) string {
	return fmt.Sprintf(":%s", port)
}

// newPublisher picks Kafka when brokers are configured and falls back to
// logging events otherwise.
func newPublisher(cfg *config.Config, log zerolog.Logger) (eventpublisher.Publisher, io.Closer) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Warn().Msg("KAFKA_BROKERS not set, settlement events will only be logged")
		return eventpublisher.NewLogPublisher(log), io.NopCloser(nil)
	}

	log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing settlement events to kafka")
	p := eventpublisher.NewKafkaPublisher(eventpublisher.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
	return p, p
}

// publisherStatus exposes the Kafka breaker state to readiness checks. The log
// publisher has no state to report.
func publisherStatus(p eventpublisher.Publisher) handler.PublisherStatus {
	status, _ := p.(handler.PublisherStatus)
	return status
}

func cleanupLimiters(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(rateLimiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters()
		}
	}
}
