package invoice

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

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, filter *service.InvoiceFilter) ([]service.Invoice, error) {
	args := m.Called(ctx, userID, filter)
	invoices, _ := args.Get(0).([]service.Invoice)
	return invoices, args.Error(1)
}

func (m *mockInvoiceService) Rebuild(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockInvoiceService) PayInvoice(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*service.Payment, error) {
	args := m.Called(ctx, id, userID, amount)
	payment, _ := args.Get(0).(*service.Payment)
	return payment, args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockInvoiceService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(auth.WithUser(ctx, userID))
	})
	NewListInvoicesHandler(svc).Register(api)
	NewRebuildInvoicesHandler(svc).Register(api)
	NewPayInvoiceHandler(svc).Register(api)
	return api
}

func TestHTTP_ListInvoices_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("ListInvoices", mock.Anything, userID, mock.MatchedBy(func(f *service.InvoiceFilter) bool {
		return f != nil && f.CardID == nil && f.Month == nil && f.Year == nil
	})).Return([]service.Invoice{
		{
			ID:          uuid.Must(uuid.NewV4()),
			CardID:      uuid.Must(uuid.NewV4()),
			UserID:      userID,
			Month:       3,
			Year:        2025,
			TotalAmount: decimal.RequireFromString("33.33"),
			PaidAmount:  decimal.Zero,
			DueDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:      "PENDING",
		},
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/invoice")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListInvoicesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Invoices, 1)
	assert.Equal(t, "33.33", body.Invoices[0].TotalAmount)
	assert.Equal(t, "0.00", body.Invoices[0].PaidAmount)
	assert.Equal(t, "PENDING", body.Invoices[0].Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListInvoices_PeriodFilter(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	cardID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("ListInvoices", mock.Anything, userID, mock.MatchedBy(func(f *service.InvoiceFilter) bool {
		return f != nil &&
			f.CardID != nil && *f.CardID == cardID &&
			f.Month != nil && *f.Month == 3 &&
			f.Year != nil && *f.Year == 2025
	})).Return(([]service.Invoice)(nil), nil)

	resp := newTestAPI(t, mockSvc, userID).
		Get("/v1/invoice?cardID=" + cardID.String() + "&month=3&year=2025")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListInvoices_ServiceError(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("ListInvoices", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Get("/v1/invoice")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RebuildInvoices_Success(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("Rebuild", mock.Anything).Return(7, nil)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/invoice/rebuild", struct{}{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RebuildInvoicesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 7, body.Upserted)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_RebuildInvoices_ServiceError(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("Rebuild", mock.Anything).Return(0, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Post("/v1/invoice/rebuild", struct{}{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_PayInvoice_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockInvoiceService)
	mockSvc.On("PayInvoice", mock.Anything, invoiceID, userID,
		mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("150.00"))
		})).Return(&service.Payment{
		PaidAmount: decimal.RequireFromString("150.00"),
		Status:     "PAID",
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).
		Post("/v1/invoice/"+invoiceID.String()+"/pay", PayInvoiceBody{Amount: "150.00"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PayInvoiceResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "150.00", body.PaidAmount)
	assert.Equal(t, "PAID", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_PayInvoice_InvalidAmount(t *testing.T) {
	mockSvc := new(mockInvoiceService)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).
		Post("/v1/invoice/"+uuid.Must(uuid.NewV4()).String()+"/pay", PayInvoiceBody{Amount: "not-a-decimal"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "PayInvoice")
}

func TestHTTP_PayInvoice_NegativeAmount(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("PayInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: payment amount must be positive", billing.ErrInvalidArgument))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).
		Post("/v1/invoice/"+uuid.Must(uuid.NewV4()).String()+"/pay", PayInvoiceBody{Amount: "-5.00"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_PayInvoice_NotFound(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	mockSvc.On("PayInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invoice", billing.ErrNotFound))

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).
		Post("/v1/invoice/"+uuid.Must(uuid.NewV4()).String()+"/pay", PayInvoiceBody{Amount: "10.00"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
