package category

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

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" doc:"Category name, unique per user"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryResponse is the response body for creating a category.
type CreateCategoryResponse struct {
	ID string `json:"id" doc:"UUID of the created category"`
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Body CreateCategoryResponse
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []Category `json:"categories" doc:"All categories owned by the user"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryService is the interface for category operations.
type categoryService interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]service.Category, error)
}

// Handler handles /v1/category endpoints.
type Handler struct {
	CategoryService categoryService
}

// NewHandler creates a new category Handler.
func NewHandler(svc categoryService) *Handler {
	return &Handler{CategoryService: svc}
}

// Register registers the category endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/category",
		Summary:       "Create category",
		Description:   "Creates a new spending category for the authenticated user.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "List categories",
		Description: "Returns all of the authenticated user's categories.",
		Tags:        []string{"Categories"},
	}, h.list)
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	id, err := h.CategoryService.CreateCategory(ctx, userID, input.Body.Name)
	if err != nil {
		return nil, apierror.FromService(err, "failed to create category")
	}

	return &CreateCategoryOutput{Body: CreateCategoryResponse{ID: id.String()}}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "missing authentication")
	}

	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		return nil, apierror.FromService(err, "failed to list categories")
	}

	resp := ListCategoriesResponseBody{Categories: make([]Category, len(categories))}
	for i, c := range categories {
		resp.Categories[i] = Category{
			ID:        c.ID.String(),
			Name:      c.Name,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
