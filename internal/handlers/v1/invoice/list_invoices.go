package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/logging"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// ListInvoicesInput is the Huma input for listing invoices.
type ListInvoicesInput struct {
	CardID string `query:"cardID" format:"uuid" required:"false" doc:"Only invoices for this card"`
	Month  int    `query:"month" minimum:"1" maximum:"12" required:"false" doc:"Only invoices for this month"`
	Year   int    `query:"year" required:"false" doc:"Only invoices for this year"`
}

// ListInvoicesResponseBody is the response body for listing invoices.
type ListInvoicesResponseBody struct {
	Invoices []Invoice `json:"invoices" doc:"Invoices, newest billing period first"`
}

// ListInvoicesOutput is the Huma output for listing invoices.
type ListInvoicesOutput struct {
	Body ListInvoicesResponseBody
}

// invoiceLister is the interface for listing invoices.
type invoiceLister interface {
	ListInvoices(ctx context.Context, userID uuid.UUID, filter *service.InvoiceFilter) ([]service.Invoice, error)
}

// ListInvoicesHandler handles GET /v1/invoice.
type ListInvoicesHandler struct {
	InvoiceService invoiceLister
}

// NewListInvoicesHandler creates a new ListInvoicesHandler.
func NewListInvoicesHandler(svc invoiceLister) *ListInvoicesHandler {
	return &ListInvoicesHandler{InvoiceService: svc}
}

// Register registers the list invoices endpoint with the Huma API.
func (h *ListInvoicesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-invoices",
		Method:      http.MethodGet,
		Path:        "/v1/invoice",
		Summary:     "List invoices",
		Description: "Returns the authenticated user's invoices, optionally narrowed to a card or billing period.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *ListInvoicesHandler) handle(ctx context.Context, input *ListInvoicesInput) (*ListInvoicesOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	filter := &service.InvoiceFilter{}
	if input.CardID != "" {
		cardID, err := uuid.FromString(input.CardID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid cardID", err)
		}
		filter.CardID = &cardID
	}
	if input.Month != 0 {
		month := input.Month
		filter.Month = &month
	}
	if input.Year != 0 {
		year := input.Year
		filter.Year = &year
	}

	invoices, err := h.InvoiceService.ListInvoices(ctx, userID, filter)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list invoices")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("invoiceCount", len(invoices))
	}

	resp := ListInvoicesResponseBody{Invoices: make([]Invoice, len(invoices))}
	for i, inv := range invoices {
		resp.Invoices[i] = fromService(inv)
	}

	return &ListInvoicesOutput{Body: resp}, nil
}
