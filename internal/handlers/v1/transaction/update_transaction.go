package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
// The body carries the full replacement state.
type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body CreateTransactionBody
}

// UpdateTransactionOutput is the Huma output for replacing a transaction.
type UpdateTransactionOutput struct{}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, tx service.Transaction) error
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Replaces a purchase and reschedules its installments.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}
	tx.ID = id
	tx.UserID = userID

	if err := h.TransactionService.UpdateTransaction(ctx, tx); err != nil {
		return nil, apierror.FromService(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{}, nil
}
