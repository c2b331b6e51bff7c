package invoice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/logging"
)

// RebuildInvoicesInput is the Huma input for triggering an invoice rebuild.
type RebuildInvoicesInput struct{}

// RebuildInvoicesResponseBody is the response body for an invoice rebuild.
type RebuildInvoicesResponseBody struct {
	Upserted int `json:"upserted" doc:"Number of invoice rows written"`
}

// RebuildInvoicesOutput is the Huma output for an invoice rebuild.
type RebuildInvoicesOutput struct {
	Body RebuildInvoicesResponseBody
}

// invoiceRebuilder is the interface for rebuilding invoices.
type invoiceRebuilder interface {
	Rebuild(ctx context.Context) (int, error)
}

// RebuildInvoicesHandler handles POST /v1/invoice/rebuild.
type RebuildInvoicesHandler struct {
	InvoiceService invoiceRebuilder
}

// NewRebuildInvoicesHandler creates a new RebuildInvoicesHandler.
func NewRebuildInvoicesHandler(svc invoiceRebuilder) *RebuildInvoicesHandler {
	return &RebuildInvoicesHandler{InvoiceService: svc}
}

// Register registers the rebuild invoices endpoint with the Huma API.
func (h *RebuildInvoicesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rebuild-invoices",
		Method:      http.MethodPost,
		Path:        "/v1/invoice/rebuild",
		Summary:     "Rebuild invoices",
		Description: "Re-aggregates every invoice total from the transaction set. Concurrent triggers share one run.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *RebuildInvoicesHandler) handle(ctx context.Context, _ *RebuildInvoicesInput) (*RebuildInvoicesOutput, error) {
	if _, ok := auth.UserID(ctx); !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("rebuildInvoicesMs")
	}
	upserted, err := h.InvoiceService.Rebuild(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to rebuild invoices")
	}

	if logData != nil {
		logData.AddData("upserted", upserted)
	}

	return &RebuildInvoicesOutput{Body: RebuildInvoicesResponseBody{Upserted: upserted}}, nil
}
