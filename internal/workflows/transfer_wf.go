package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/logger"
)

// TransferProduct moves a token to a whitelisted recipient.
//
// The recipient is whitelisted first when needed, then membership is
// re-checked immediately before the transfer since it may have been
// revoked in between. An owner that already equals the recipient
// completes the workflow without resubmitting, which makes retries of
// the whole workflow safe after a transfer landed.
func (w *workerCore) TransferProduct(ctx workflow.Context, input *domain.TransferInput) error {
	if input == nil || !input.Valid() {
		return temporal.NewNonRetryableApplicationError(
			"invalid transfer input",
			ErrTypeInvalidInput,
			domain.ErrInvalidInput,
		)
	}

	logger.InfoWf(ctx, "Processing product transfer",
		zap.Uint64("token_id", input.TokenID),
		zap.String("from", input.From),
		zap.String("to", input.To),
	)

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			NonRetryableErrorTypes: []string{
				ErrTypeInvalidInput,
				ErrTypeTokenNotFound,
				ErrTypeWhitelistViolation,
				ErrTypeUnauthorizedTransfer,
			},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Idempotence guard; a retried workflow whose transfer
	// already landed has nothing left to do
	var owner string
	if err := workflow.ExecuteActivity(ctx, w.executor.GetOwner, input.TokenID).Get(ctx, &owner); err != nil {
		logger.ErrorWf(ctx, err, zap.Uint64("token_id", input.TokenID))
		return err
	}
	if domain.NormalizeAddress(owner) == domain.NormalizeAddress(input.To) {
		logger.InfoWf(ctx, "Recipient already owns the token, nothing to transfer",
			zap.Uint64("token_id", input.TokenID),
			zap.String("owner", owner),
		)
		return nil
	}

	// Step 2: Ensure the recipient is whitelisted
	var whitelisted bool
	if err := workflow.ExecuteActivity(ctx, w.executor.CheckWhitelisted, input.To).Get(ctx, &whitelisted); err != nil {
		logger.ErrorWf(ctx, err, zap.String("to", input.To))
		return err
	}
	if !whitelisted {
		if err := workflow.ExecuteActivity(ctx, w.executor.AddToWhitelist, input.To).Get(ctx, nil); err != nil {
			logger.ErrorWf(ctx, err, zap.String("to", input.To))
			return err
		}
	}

	// Step 3: Re-check membership right before transferring; the
	// whitelist may have changed since step 2
	if err := workflow.ExecuteActivity(ctx, w.executor.CheckWhitelisted, input.To).Get(ctx, &whitelisted); err != nil {
		logger.ErrorWf(ctx, err, zap.String("to", input.To))
		return err
	}
	if !whitelisted {
		return temporal.NewNonRetryableApplicationError(
			"recipient lost whitelist membership before transfer",
			ErrTypeWhitelistViolation,
			domain.ErrWhitelistViolation,
		)
	}

	// Step 4: Submit the transfer
	if err := workflow.ExecuteActivity(ctx, w.executor.ExecuteTransfer, input).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx, err,
			zap.Uint64("token_id", input.TokenID),
			zap.String("to", input.To),
		)
		return err
	}

	logger.InfoWf(ctx, "Product transfer completed",
		zap.Uint64("token_id", input.TokenID),
		zap.String("to", input.To),
	)

	return nil
}
