// Package worker implements the Asynq consumer for settlement status changes.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"transferservice/internal/repository"
	"transferservice/internal/service"
)

// TaskTypeSettleTransfer is the Asynq task type for settlement status changes.
// Tasks of this type are produced by the external settlement process; this
// service only applies the requested transition after checking its legality.
const TaskTypeSettleTransfer = "transfer:settle"

// SettleTransferPayload is the payload structure for settlement Asynq tasks.
type SettleTransferPayload struct {
	TransferID string `json:"transfer_id"`
	Status     string `json:"status"`
}

// NewSettlementHandler returns a function to handle settlement status tasks.
func NewSettlementHandler(svc service.TransferServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SettleTransferPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return nil
		}

		err := svc.UpdateStatus(ctx, payload.TransferID, repository.TransferStatus(payload.Status))
		switch {
		case err == nil:
			logger.Infow("Settlement status applied", "transfer_id", payload.TransferID, "status", payload.Status)
			return nil
		case errors.Is(err, service.ErrIllegalTransition), errors.Is(err, service.ErrTransferNotFound):
			// Retrying cannot make a bad transition legal.
			logger.Errorw("Settlement task rejected",
				"transfer_id", payload.TransferID, "status", payload.Status, "error", err)
			return nil
		default:
			logger.Errorw("Settlement task failed",
				"transfer_id", payload.TransferID, "status", payload.Status, "error", err)
			return err
		}
	}
}

// SettlementEnqueuer enqueues settlement status tasks with the configured
// retry limit and timeout. Used by settlement-side producers and tests; the
// transfer core itself never enqueues transitions.
type SettlementEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

// NewSettlementEnqueuer creates a new SettlementEnqueuer.
func NewSettlementEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *SettlementEnqueuer {
	return &SettlementEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// EnqueueStatusChange enqueues a settlement status change task.
func (e *SettlementEnqueuer) EnqueueStatusChange(ctx context.Context, payload SettleTransferPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeSettleTransfer, data,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
	)

	_, err = e.client.EnqueueContext(ctx, task)
	return err
}
