package dependent

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/apierror"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

// Dependent is the API response model for a dependent.
type Dependent struct {
	ID        string `json:"id" doc:"Dependent UUID"`
	Name      string `json:"name" doc:"Dependent name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// CreateDependentBody is the request body for creating a dependent.
type CreateDependentBody struct {
	Name string `json:"name" required:"true" minLength:"1" doc:"Dependent name"`
}

// CreateDependentInput is the Huma input for creating a dependent.
type CreateDependentInput struct {
	Body CreateDependentBody
}

// CreateDependentResponse is the response body for creating a dependent.
type CreateDependentResponse struct {
	ID string `json:"id" doc:"UUID of the created dependent"`
}

// CreateDependentOutput is the Huma output for creating a dependent.
type CreateDependentOutput struct {
	Body CreateDependentResponse
}

// ListDependentsResponseBody is the response body for listing dependents.
type ListDependentsResponseBody struct {
	Dependents []Dependent `json:"dependents" doc:"All dependents owned by the user"`
}

// ListDependentsOutput is the Huma output for listing dependents.
type ListDependentsOutput struct {
	Body ListDependentsResponseBody
}

// dependentService is the interface for dependent operations.
type dependentService interface {
	CreateDependent(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
	ListDependents(ctx context.Context, userID uuid.UUID) ([]service.Dependent, error)
}

// Handler handles /v1/dependent endpoints.
type Handler struct {
	DependentService dependentService
}

// NewHandler creates a new dependent Handler.
func NewHandler(svc dependentService) *Handler {
	return &Handler{DependentService: svc}
}

// Register registers the dependent endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-dependent",
		Method:        http.MethodPost,
		Path:          "/v1/dependent",
		Summary:       "Create dependent",
		Description:   "Creates a new dependent for the authenticated user.",
		Tags:          []string{"Dependents"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-dependents",
		Method:      http.MethodGet,
		Path:        "/v1/dependent",
		Summary:     "List dependents",
		Description: "Returns all of the authenticated user's dependents.",
		Tags:        []string{"Dependents"},
	}, h.list)
}

func (h *Handler) create(ctx context.Context, input *CreateDependentInput) (*CreateDependentOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := h.DependentService.CreateDependent(ctx, userID, input.Body.Name)
	if err != nil {
		return nil, apierror.FromService(err, "failed to create dependent")
	}

	return &CreateDependentOutput{Body: CreateDependentResponse{ID: id.String()}}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListDependentsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	dependents, err := h.DependentService.ListDependents(ctx, userID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list dependents")
	}

	resp := ListDependentsResponseBody{Dependents: make([]Dependent, len(dependents))}
	for i, d := range dependents {
		resp.Dependents[i] = Dependent{
			ID:        d.ID.String(),
			Name:      d.Name,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListDependentsOutput{Body: resp}, nil
}
