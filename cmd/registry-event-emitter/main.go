package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/config"
	"github.com/tagin-labs/tagin-verifier/internal/emitter"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	"github.com/tagin-labs/tagin-verifier/internal/providers/jetstream"
	"github.com/tagin-labs/tagin-verifier/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "registry-event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Registry Event Emitter")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize ledger client over WebSocket. The emitter never
	// submits transactions, so no signer is wired.
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Ledger.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger WebSocket", zap.Error(err), zap.String("websocket_url", cfg.Ledger.WebSocketURL))
	}
	defer adapterEthClient.Close()

	ledgerClient, err := ledger.NewClient(ctx, ledger.Config{
		ContractAddress:     cfg.Ledger.ContractAddress,
		ReadRetryMax:        cfg.Ledger.ReadRetryMax,
		ReceiptPollInterval: cfg.Ledger.ReceiptPollInterval,
		ReceiptTimeout:      cfg.Ledger.ReceiptTimeout,
	}, adapterEthClient, nil, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to ledger WebSocket", zap.String("contract", cfg.Ledger.ContractAddress))

	// Initialize NATS publisher
	natsPublisher, err := jetstream.NewPublisher(
		ctx,
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Initialize registry subscriber
	registrySubscriber := ledger.NewSubscriber(ledgerClient)
	defer registrySubscriber.Close()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Create emitter with common logic
	emitterCfg := emitter.Config{
		ChainID:         cfg.Ledger.ChainID,
		StartBlock:      cfg.Ledger.StartBlock,
		CursorSaveFreq:  cfg.Ledger.CursorSaveFreq,
		CursorSaveDelay: cfg.Ledger.CursorSaveDelay,
	}

	eventEmitter := emitter.NewEmitter(
		registrySubscriber,
		natsPublisher,
		dataStore,
		emitterCfg,
		clockAdapter,
	)
	defer eventEmitter.Close()

	// Channel for emitter errors
	errCh := make(chan error, 1)

	// Start the emitter
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case <-natsPublisher.CloseChan():
		logger.InfoCtx(ctx, "NATS connection closed unexpectedly")
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Registry Event Emitter stopped")
}
