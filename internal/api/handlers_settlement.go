package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"transferservice/internal/repository"
	"transferservice/internal/worker"
)

// SettlementQueue enqueues settlement status change tasks for async processing.
type SettlementQueue interface {
	EnqueueStatusChange(ctx context.Context, payload worker.SettleTransferPayload) error
}

// SettlementRequest represents the request body for a settlement status change
type SettlementRequest struct {
	Status string `json:"status" example:"Processing"`
}

// SettlementAccepted acknowledges an enqueued settlement status change
type SettlementAccepted struct {
	TransferID string `json:"transferId" example:"5f0e8d3a-41bb-4a17-9c35-8a2d7c6e1f90"`
	Status     string `json:"status" example:"Processing"`
}

// HandleEnqueueSettlement godoc
// @Summary Request a transfer status change
// @Description Enqueues a settlement status change for async application. The transition is checked against the transfer's current status when the task runs, not at enqueue time.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transferId path string true "Transfer ID (UUID)" format(uuid)
// @Param request body SettlementRequest true "Target status"
// @Success 202 {object} SettlementAccepted "Status change enqueued"
// @Failure 400 {object} ErrorResponse "Unknown status or malformed transferId"
// @Failure 500 {object} ErrorResponse "Enqueue failure"
// @Router /transfers/{transferId}/settlement [post]
func HandleEnqueueSettlement(queue SettlementQueue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transferID := chi.URLParam(r, "transferId")
		if _, err := uuid.Parse(transferID); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid transferId"})
			return
		}

		var req SettlementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid JSON"})
			return
		}
		if !repository.TransferStatus(req.Status).IsValid() {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown status"})
			return
		}

		err := queue.EnqueueStatusChange(r.Context(), worker.SettleTransferPayload{
			TransferID: transferID,
			Status:     req.Status,
		})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to enqueue status change"})
			return
		}

		writeJSON(w, http.StatusAccepted, SettlementAccepted{
			TransferID: transferID,
			Status:     req.Status,
		})
	}
}
