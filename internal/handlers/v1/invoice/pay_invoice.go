package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// PayInvoiceBody is the request body for paying an invoice.
type PayInvoiceBody struct {
	Amount string `json:"amount" required:"true" doc:"Decimal payment amount"`
}

// PayInvoiceInput is the Huma input for paying an invoice.
type PayInvoiceInput struct {
	ID   string `path:"id" format:"uuid" doc:"Invoice UUID"`
	Body PayInvoiceBody
}

// PayInvoiceResponseBody is the response body for paying an invoice.
type PayInvoiceResponseBody struct {
	PaidAmount string `json:"paidAmount" doc:"Decimal amount paid so far"`
	Status     string `json:"status" enum:"PENDING,PAID,OVERDUE" doc:"Invoice status after the payment"`
}

// PayInvoiceOutput is the Huma output for paying an invoice.
type PayInvoiceOutput struct {
	Body PayInvoiceResponseBody
}

// invoicePayer is the interface for paying invoices.
type invoicePayer interface {
	PayInvoice(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*service.Payment, error)
}

// PayInvoiceHandler handles POST /v1/invoice/{id}/pay.
type PayInvoiceHandler struct {
	InvoiceService invoicePayer
}

// NewPayInvoiceHandler creates a new PayInvoiceHandler.
func NewPayInvoiceHandler(svc invoicePayer) *PayInvoiceHandler {
	return &PayInvoiceHandler{InvoiceService: svc}
}

// Register registers the pay invoice endpoint with the Huma API.
func (h *PayInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pay-invoice",
		Method:      http.MethodPost,
		Path:        "/v1/invoice/{id}/pay",
		Summary:     "Pay invoice",
		Description: "Registers a payment against an invoice. The invoice flips to PAID once fully covered.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *PayInvoiceHandler) handle(ctx context.Context, input *PayInvoiceInput) (*PayInvoiceOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid invoice id", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	payment, err := h.InvoiceService.PayInvoice(ctx, id, userID, amount)
	if err != nil {
		return nil, apierror.FromService(err, "failed to pay invoice")
	}

	return &PayInvoiceOutput{Body: PayInvoiceResponseBody{
		PaidAmount: payment.PaidAmount.StringFixed(2),
		Status:     payment.Status,
	}}, nil
}
