package card

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

// CreateCardBody is the request body for creating a card.
type CreateCardBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Display name of the card"`
	Bank        string `json:"bank" required:"true" minLength:"1" doc:"Issuing bank"`
	Network     string `json:"network" required:"true" minLength:"1" doc:"Card network, e.g. VISA"`
	CreditLimit string `json:"creditLimit" required:"true" doc:"Decimal credit limit"`
	DueDay      int    `json:"dueDay" required:"true" minimum:"1" maximum:"31" doc:"Day of month the invoice is due"`
	PayDay      int    `json:"payDay" required:"true" minimum:"1" maximum:"31" doc:"Closing day of the billing cycle"`
}

// CreateCardInput is the Huma input for creating a card.
type CreateCardInput struct {
	Body CreateCardBody
}

// CreateCardResponse is the response body for creating a card.
type CreateCardResponse struct {
	ID string `json:"id" doc:"UUID of the created card"`
}

// CreateCardOutput is the Huma output for creating a card.
type CreateCardOutput struct {
	Body CreateCardResponse
}

// cardCreator is the interface for creating cards.
type cardCreator interface {
	CreateCard(ctx context.Context, card service.Card) (uuid.UUID, error)
}

// CreateCardHandler handles POST /v1/card.
type CreateCardHandler struct {
	CardService cardCreator
}

// NewCreateCardHandler creates a new CreateCardHandler.
func NewCreateCardHandler(svc cardCreator) *CreateCardHandler {
	return &CreateCardHandler{CardService: svc}
}

// Register registers the create card endpoint with the Huma API.
func (h *CreateCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-card",
		Method:        http.MethodPost,
		Path:          "/v1/card",
		Summary:       "Create card",
		Description:   "Creates a new credit card for the authenticated user.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCardHandler) handle(ctx context.Context, input *CreateCardInput) (*CreateCardOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	creditLimit, err := decimal.NewFromString(input.Body.CreditLimit)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid creditLimit", err)
	}

	id, err := h.CardService.CreateCard(ctx, service.Card{
		UserID:      userID,
		Name:        input.Body.Name,
		Bank:        input.Body.Bank,
		Network:     input.Body.Network,
		CreditLimit: creditLimit,
		DueDay:      input.Body.DueDay,
		PayDay:      input.Body.PayDay,
	})
	if err != nil {
		return nil, apierror.FromService(err, "failed to create card")
	}

	return &CreateCardOutput{Body: CreateCardResponse{ID: id.String()}}, nil
}
