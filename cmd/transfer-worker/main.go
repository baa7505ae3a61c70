package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/config"
	"github.com/tagin-labs/tagin-verifier/internal/ledger"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
	temporal "github.com/tagin-labs/tagin-verifier/internal/providers/temporal"
	"github.com/tagin-labs/tagin-verifier/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadTransferWorkerConfig(*configFile, *envPath)
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
			"service": "transfer-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Transfer Worker")

	// Initialize adapters
	clockAdapter := adapter.NewClock()

	// Initialize ledger client. The worker submits whitelist and
	// transfer transactions, so a signer key is required.
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Ledger.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial ledger RPC", zap.Error(err), zap.String("rpc_url", cfg.Ledger.RPCURL))
	}
	defer adapterEthClient.Close()

	signer, err := ledger.NewKeySigner(cfg.Ledger.SignerKey)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create transaction signer", zap.Error(err))
	}

	ledgerClient, err := ledger.NewClient(ctx, ledger.Config{
		ContractAddress:     cfg.Ledger.ContractAddress,
		ReadRetryMax:        cfg.Ledger.ReadRetryMax,
		ReceiptPollInterval: cfg.Ledger.ReceiptPollInterval,
		ReceiptTimeout:      cfg.Ledger.ReceiptTimeout,
	}, adapterEthClient, signer, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create ledger client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to ledger RPC", zap.String("contract", cfg.Ledger.ContractAddress))

	// Initialize executor for activities
	executor := workflows.NewExecutor(ledgerClient)

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with logger and Sentry interceptor
	sentryInterceptor := temporal.NewSentryActivityInterceptor()
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.TransferTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors: []interceptor.WorkerInterceptor{
				sentryInterceptor,
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("task_queue", cfg.Temporal.TransferTaskQueue))

	// Create worker core instance
	workerCore := workflows.NewWorkerCore(executor)

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.TransferProduct)
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.GetOwner)
	temporalWorker.RegisterActivity(executor.CheckWhitelisted)
	temporalWorker.RegisterActivity(executor.AddToWhitelist)
	temporalWorker.RegisterActivity(executor.ExecuteTransfer)
	logger.InfoCtx(ctx, "Registered activities")

	// Run the worker until interrupted
	err = temporalWorker.Run(worker.InterruptCh())
	if err != nil {
		logger.FatalCtx(ctx, "Worker stopped with error", zap.Error(err))
	}

	logger.Info("Transfer worker stopped")
}
