package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CardID            string   `json:"cardID" required:"true" format:"uuid" doc:"Card UUID"`
	CategoryID        string   `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	DependentID       string   `json:"dependentID,omitempty" format:"uuid" doc:"Dependent UUID, omit for the user's own purchase"`
	Name              string   `json:"name" required:"true" minLength:"1" doc:"Name of the purchase"`
	Description       string   `json:"description,omitempty" doc:"Free-form description"`
	Amount            string   `json:"amount" required:"true" doc:"Decimal total amount"`
	PurchaseDate      string   `json:"purchaseDate" format:"date-time" doc:"RFC3339 purchase date, defaults to now"`
	Installments      int      `json:"installments" required:"true" minimum:"1" doc:"Number of installments"`
	InstallmentValues []string `json:"installmentValues,omitempty" doc:"Explicit decimal value per installment, must sum to amount"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, tx service.Transaction) (uuid.UUID, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new purchase and schedules its installments.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseTransactionBody parses and validates the shared request fields.
// Huma's schema validation has already checked formats, so the remaining
// work is string-to-type conversion.
func parseTransactionBody(body CreateTransactionBody) (service.Transaction, error) {
	cardID, err := uuid.FromString(body.CardID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid cardID", err)
	}
	categoryID, err := uuid.FromString(body.CategoryID)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}

	var dependentID *uuid.UUID
	if body.DependentID != "" {
		parsed, parseErr := uuid.FromString(body.DependentID)
		if parseErr != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid dependentID", parseErr)
		}
		dependentID = &parsed
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	purchaseDate := time.Now()
	if body.PurchaseDate != "" {
		purchaseDate, err = time.Parse(time.RFC3339, body.PurchaseDate)
		if err != nil {
			return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid purchaseDate", err)
		}
	}

	var values []decimal.Decimal
	if len(body.InstallmentValues) > 0 {
		values = make([]decimal.Decimal, len(body.InstallmentValues))
		for i, raw := range body.InstallmentValues {
			values[i], err = decimal.NewFromString(raw)
			if err != nil {
				return service.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid installmentValues", err)
			}
		}
	}

	return service.Transaction{
		CardID:            cardID,
		CategoryID:        categoryID,
		DependentID:       dependentID,
		Name:              body.Name,
		Description:       body.Description,
		Amount:            amount,
		PurchaseDate:      purchaseDate,
		Installments:      body.Installments,
		InstallmentValues: values,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	tx, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}
	tx.UserID = userID

	id, err := h.TransactionService.CreateTransaction(ctx, tx)
	if err != nil {
		return nil, apierror.FromService(err, "failed to create transaction")
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id.String()}}, nil
}
