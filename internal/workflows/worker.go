package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
)

// WorkerCore defines the interface for the transfer workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// TransferProduct moves a token to a whitelisted recipient
	TransferProduct(ctx workflow.Context, input *domain.TransferInput) error
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{
		executor: executor,
	}
}
