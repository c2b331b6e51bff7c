package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

// DeleteTransaction removes a purchase and refreshes the owning card's
// available limit in the same database transaction.
type DeleteTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil || existing.UserID != a.UserID {
		return fmt.Errorf("%w: transaction %s", billing.ErrNotFound, a.ID)
	}

	locked, err := lockCard(ctx, writer, existing.CardID, a.UserID)
	if err != nil {
		return err
	}

	removed, err := writer.Transaction.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("%w: transaction %s", billing.ErrNotFound, a.ID)
	}

	return refreshAvailableLimit(ctx, writer, locked)
}
