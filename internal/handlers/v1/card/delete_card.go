package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
)

// DeleteCardInput is the Huma input for deleting a card.
type DeleteCardInput struct {
	ID string `path:"id" format:"uuid" doc:"Card UUID"`
}

// DeleteCardOutput is the Huma output for deleting a card.
type DeleteCardOutput struct{}

// cardDeleter is the interface for deleting cards.
type cardDeleter interface {
	DeleteCard(ctx context.Context, id, userID uuid.UUID) error
}

// DeleteCardHandler handles DELETE /v1/card/{id}.
type DeleteCardHandler struct {
	CardService cardDeleter
}

// NewDeleteCardHandler creates a new DeleteCardHandler.
func NewDeleteCardHandler(svc cardDeleter) *DeleteCardHandler {
	return &DeleteCardHandler{CardService: svc}
}

// Register registers the delete card endpoint with the Huma API.
func (h *DeleteCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-card",
		Method:        http.MethodDelete,
		Path:          "/v1/card/{id}",
		Summary:       "Delete card",
		Description:   "Deletes a card that has no transactions.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCardHandler) handle(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid card id", err)
	}

	if err := h.CardService.DeleteCard(ctx, id, userID); err != nil {
		return nil, apierror.FromService(err, "failed to delete card")
	}

	return &DeleteCardOutput{}, nil
}
