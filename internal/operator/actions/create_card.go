package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
)

// CreateCard inserts a card with its available limit set to the full credit
// limit. The (user, name) unique constraint guards against duplicates.
type CreateCard struct {
	UserID      uuid.UUID
	Name        string
	Bank        string
	Network     string
	CreditLimit decimal.Decimal
	DueDay      int
	PayDay      int

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateCard) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Card.Insert(ctx, &card.CardCreate{
		UserID:      a.UserID,
		Name:        a.Name,
		Bank:        a.Bank,
		Network:     a.Network,
		CreditLimit: a.CreditLimit,
		DueDay:      a.DueDay,
		PayDay:      a.PayDay,
	})
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return fmt.Errorf("%w: card %q already exists", billing.ErrConflict, a.Name)
		}
		return err
	}

	a.CreatedID = id
	return nil
}

// DeleteCard removes a card that has no transactions left.
type DeleteCard struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (a *DeleteCard) Perform(ctx context.Context, writer *storage.Writer) error {
	locked, err := lockCard(ctx, writer, a.ID, a.UserID)
	if err != nil {
		return err
	}

	used, err := writer.Transaction.SumAmountByCard(ctx, locked.ID)
	if err != nil {
		return err
	}
	if !used.IsZero() {
		return fmt.Errorf("%w: card %q still has transactions", billing.ErrConflict, locked.Name)
	}

	removed, err := writer.Card.Delete(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return fmt.Errorf("%w: card %s", billing.ErrNotFound, a.ID)
	}
	return nil
}
