package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// GetCardInput is the Huma input for fetching one card.
type GetCardInput struct {
	ID string `path:"id" format:"uuid" doc:"Card UUID"`
}

// GetCardOutput is the Huma output for fetching one card.
type GetCardOutput struct {
	Body Card
}

// cardGetter is the interface for fetching one card.
type cardGetter interface {
	GetCard(ctx context.Context, id, userID uuid.UUID) (*service.Card, error)
}

// GetCardHandler handles GET /v1/card/{id}.
type GetCardHandler struct {
	CardService cardGetter
}

// NewGetCardHandler creates a new GetCardHandler.
func NewGetCardHandler(svc cardGetter) *GetCardHandler {
	return &GetCardHandler{CardService: svc}
}

// Register registers the get card endpoint with the Huma API.
func (h *GetCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-card",
		Method:      http.MethodGet,
		Path:        "/v1/card/{id}",
		Summary:     "Get card",
		Description: "Returns one of the authenticated user's cards.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *GetCardHandler) handle(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid card id", err)
	}

	c, err := h.CardService.GetCard(ctx, id, userID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to get card")
	}

	return &GetCardOutput{Body: fromService(*c)}, nil
}
