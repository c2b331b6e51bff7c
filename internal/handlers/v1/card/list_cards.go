package card

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

// ListCardsInput is the Huma input for listing cards.
type ListCardsInput struct{}

// ListCardsResponseBody is the response body for listing cards.
type ListCardsResponseBody struct {
	Cards []Card `json:"cards" doc:"All cards owned by the user"`
}

// ListCardsOutput is the Huma output for listing cards.
type ListCardsOutput struct {
	Body ListCardsResponseBody
}

// cardLister is the interface for listing cards.
type cardLister interface {
	ListCards(ctx context.Context, userID uuid.UUID) ([]service.Card, error)
}

// ListCardsHandler handles GET /v1/card.
type ListCardsHandler struct {
	CardService cardLister
}

// NewListCardsHandler creates a new ListCardsHandler.
func NewListCardsHandler(svc cardLister) *ListCardsHandler {
	return &ListCardsHandler{CardService: svc}
}

// Register registers the list cards endpoint with the Huma API.
func (h *ListCardsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/v1/card",
		Summary:     "List cards",
		Description: "Returns all of the authenticated user's cards.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *ListCardsHandler) handle(ctx context.Context, _ *ListCardsInput) (*ListCardsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	cards, err := h.CardService.ListCards(ctx, userID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list cards")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("cardCount", len(cards))
	}

	resp := ListCardsResponseBody{Cards: make([]Card, len(cards))}
	for i, c := range cards {
		resp.Cards[i] = fromService(c)
	}

	return &ListCardsOutput{Body: resp}, nil
}
