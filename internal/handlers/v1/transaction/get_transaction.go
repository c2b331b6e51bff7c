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

// GetTransactionInput is the Huma input for fetching one transaction.
type GetTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// GetTransactionOutput is the Huma output for fetching one transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching one transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, id, userID uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Description: "Returns one of the authenticated user's transactions.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, id, userID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to get transaction")
	}

	return &GetTransactionOutput{Body: fromService(*tx)}, nil
}
