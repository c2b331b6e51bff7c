package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, tx service.Transaction) (uuid.UUID, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, tx service.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id, userID)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

// newTestAPI registers the write-side handlers against a humatest API with
// the given user pre-authenticated.
func newTestAPI(t *testing.T, svc *mockTransactionService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(auth.WithUser(ctx, userID))
	})
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func validTransactionBody() CreateTransactionBody {
	return CreateTransactionBody{
		CardID:       uuid.Must(uuid.NewV4()).String(),
		CategoryID:   uuid.Must(uuid.NewV4()).String(),
		Name:         "Headphones",
		Amount:       "100.00",
		PurchaseDate: "2025-01-15T10:30:00Z",
		Installments: 3,
	}
}

// -- parseTransactionBody unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseTransactionBody_ValidInput(t *testing.T) {
	cardID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	dependentID := uuid.Must(uuid.NewV4())

	tx, err := parseTransactionBody(CreateTransactionBody{
		CardID:            cardID.String(),
		CategoryID:        categoryID.String(),
		DependentID:       dependentID.String(),
		Name:              "Headphones",
		Description:       "Gift",
		Amount:            "100.00",
		PurchaseDate:      "2025-01-15T10:30:00Z",
		Installments:      3,
		InstallmentValues: []string{"33.33", "33.33", "33.34"},
	})

	assert.NoError(t, err)
	assert.Equal(t, cardID, tx.CardID)
	assert.Equal(t, categoryID, tx.CategoryID)
	assert.NotNil(t, tx.DependentID)
	assert.Equal(t, dependentID, *tx.DependentID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 3, tx.Installments)
	assert.Len(t, tx.InstallmentValues, 3)
	assert.True(t, tx.InstallmentValues[2].Equal(decimal.RequireFromString("33.34")))
	expectedDate, _ := time.Parse(time.RFC3339, "2025-01-15T10:30:00Z")
	assert.True(t, tx.PurchaseDate.Equal(expectedDate))
}

func TestParseTransactionBody_DefaultsPurchaseDateToNow(t *testing.T) {
	body := validTransactionBody()
	body.PurchaseDate = ""

	tx, err := parseTransactionBody(body)

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), tx.PurchaseDate, time.Minute)
	assert.Nil(t, tx.DependentID)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	body := validTransactionBody()

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.UserID == userID &&
			tx.CardID.String() == body.CardID &&
			tx.Amount.Equal(decimal.RequireFromString("100.00")) &&
			tx.Installments == 3
	})).Return(txID, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusCreated, resp.Code)
	var respBody CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	assert.Equal(t, txID.String(), respBody.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", CreateTransactionBody{
		CardID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidCardID(t *testing.T) {
	mockSvc := new(mockTransactionService)

	body := validTransactionBody()
	body.CardID = "not-a-uuid"

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	body := validTransactionBody()
	body.Amount = "not-a-decimal"

	// Amount is a plain string with no Huma format tag, so parseTransactionBody
	// handles validation and returns 400.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ZeroInstallments(t *testing.T) {
	mockSvc := new(mockTransactionService)

	body := validTransactionBody()
	body.Installments = 0

	// minimum:"1" violation.
	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ValuesDoNotSum(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("%w: values sum mismatch", billing.ErrInvalidArgument))

	body := validTransactionBody()
	body.InstallmentValues = []string{"33.33", "33.33", "33.33"}

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_DuplicateConflict(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, fmt.Errorf("%w: duplicate purchase", billing.ErrConflict))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", validTransactionBody())

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/transaction", validTransactionBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx service.Transaction) bool {
		return tx.ID == txID && tx.UserID == userID
	})).Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Put("/v1/transaction/"+txID.String(), validTransactionBody())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: transaction", billing.ErrNotFound))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).
		Put("/v1/transaction/"+uuid.Must(uuid.NewV4()).String(), validTransactionBody())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, txID, userID).Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Delete("/v1/transaction/" + txID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransaction", mock.Anything, txID, userID).Return(&service.Transaction{
		ID:                 txID,
		UserID:             userID,
		CardID:             uuid.Must(uuid.NewV4()),
		CategoryID:         uuid.Must(uuid.NewV4()),
		Name:               "Headphones",
		Amount:             decimal.RequireFromString("100.00"),
		PurchaseDate:       now,
		Installments:       3,
		InstallmentValues:  []decimal.Decimal{decimal.RequireFromString("33.33"), decimal.RequireFromString("33.33"), decimal.RequireFromString("33.34")},
		InstallmentPeriods: []string{"03/2025", "04/2025", "05/2025"},
		CreatedAt:          now,
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/transaction/" + txID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "100.00", body.Amount)
	assert.Equal(t, []string{"33.33", "33.33", "33.34"}, body.InstallmentValues)
	assert.Equal(t, []string{"03/2025", "04/2025", "05/2025"}, body.InstallmentPeriods)
	mockSvc.AssertExpectations(t)
}
