package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

// CreateCategory inserts a category for the user.
type CreateCategory struct {
	UserID uuid.UUID
	Name   string

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Category.Insert(ctx, a.UserID, a.Name)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("%w: category %q already exists", billing.ErrConflict, a.Name)
		}
		return err
	}

	a.CreatedID = id
	return nil
}

// CreateDependent inserts a dependent for the user.
type CreateDependent struct {
	UserID uuid.UUID
	Name   string

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateDependent) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Dependent.Insert(ctx, a.UserID, a.Name)
	if err != nil {
		return err
	}

	a.CreatedID = id
	return nil
}
