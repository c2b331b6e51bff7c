package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
)

// lockCard loads a card under FOR UPDATE and checks ownership. The row lock
// serializes concurrent writers on the same card for the rest of the
// transaction, which is what keeps the available limit consistent with the
// transaction sum.
func lockCard(ctx context.Context, writer *storage.Writer, cardID, userID uuid.UUID) (*card.Card, error) {
	locked, err := writer.Card.FindByIDForUpdate(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if locked == nil || locked.UserID != userID {
		return nil, fmt.Errorf("%w: card %s", billing.ErrNotFound, cardID)
	}
	return locked, nil
}

// refreshAvailableLimit recomputes availableLimit = creditLimit - SUM(amount)
// from the live transaction set. Must run inside the same transaction as the
// write that changed the set; the caller holds the card's row lock.
func refreshAvailableLimit(ctx context.Context, writer *storage.Writer, locked *card.Card) error {
	used, err := writer.Transaction.SumAmountByCard(ctx, locked.ID)
	if err != nil {
		return err
	}

	return writer.Card.UpdateAvailableLimit(ctx, locked.ID, locked.CreditLimit.Sub(used))
}
