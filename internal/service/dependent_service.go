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
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/dependent"
)

// Dependent is the service-level dependent model.
type Dependent struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// DependentService handles dependent business logic.
type DependentService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewDependentService creates a new DependentService.
func NewDependentService(store *storage.Storage, op actionProcessor) *DependentService {
	return &DependentService{storage: store, operator: op}
}

// CreateDependent persists a dependent and returns its ID.
func (s *DependentService) CreateDependent(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return uuid.Nil, fmt.Errorf("%w: dependent name must not be empty", billing.ErrInvalidArgument)
	}

	action := &actions.CreateDependent{UserID: userID, Name: name}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// ListDependents returns all of the user's dependents.
func (s *DependentService) ListDependents(ctx context.Context, userID uuid.UUID) ([]Dependent, error) {
	rows, err := s.storage.Dependents.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Dependent, len(rows))
	for i, row := range rows {
		converted[i] = convertDependent(row)
	}
	return converted, nil
}

func convertDependent(row *dependent.Dependent) Dependent {
	return Dependent{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
