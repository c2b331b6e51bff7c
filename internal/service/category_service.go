package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/category"
)

// Category is the service-level category model.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryService handles category business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, op actionProcessor) *CategoryService {
	return &CategoryService{storage: store, operator: op}
}

// CreateCategory persists a category and returns its ID.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, fmt.Errorf("%w: category name must not be empty", billing.ErrInvalidArgument)
	}

	action := &actions.CreateCategory{UserID: userID, Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListCategories returns all of the user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	rows, err := s.storage.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = convertCategory(row)
	}
	return converted, nil
}

func convertCategory(row *category.Category) Category {
	return Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
