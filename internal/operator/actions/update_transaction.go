package actions

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

// UpdateTransaction replaces a purchase's state, reschedules its
// installments, and refreshes the available limit of every card involved.
// When the purchase moves between cards both cards are refreshed.
type UpdateTransaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CardID       uuid.UUID
	CategoryID   uuid.UUID
	DependentID  *uuid.UUID
	Name         string
	Description  string
	Amount       decimal.Decimal
	PurchaseDate time.Time
	Installments int
	Values       []decimal.Decimal
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transaction.FindByID(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil || existing.UserID != a.UserID {
		return fmt.Errorf("%w: transaction %s", billing.ErrNotFound, a.ID)
	}

	cards, err := a.lockCards(ctx, writer, existing.CardID)
	if err != nil {
		return err
	}

	target := cards[a.CardID]
	periods, err := billing.ScheduleInstallments(a.PurchaseDate, target.PayDay, a.Installments)
	if err != nil {
		return err
	}

	err = writer.Transaction.Update(ctx, a.ID, &transaction.TransactionUpdate{
		CardID:             a.CardID,
		CategoryID:         a.CategoryID,
		DependentID:        a.DependentID,
		Name:               a.Name,
		Description:        a.Description,
		Amount:             a.Amount,
		PurchaseDate:       a.PurchaseDate,
		Installments:       a.Installments,
		InstallmentValues:  encodeValues(a.Values),
		InstallmentPeriods: encodePeriods(periods),
	})
	if err != nil {
		return err
	}

	for _, locked := range cards {
		if err := refreshAvailableLimit(ctx, writer, locked); err != nil {
			return err
		}
	}
	return nil
}

// lockCards locks the target card and, when the purchase is moving, the
// previous card as well. Locks are taken in ID order so two concurrent
// updates crossing the same pair of cards cannot deadlock.
func (a *UpdateTransaction) lockCards(ctx context.Context, writer *storage.Writer, previousCardID uuid.UUID) (map[uuid.UUID]*card.Card, error) {
	ids := []uuid.UUID{a.CardID}
	if previousCardID != a.CardID {
		ids = append(ids, previousCardID)
		if bytes.Compare(ids[0].Bytes(), ids[1].Bytes()) > 0 {
			ids[0], ids[1] = ids[1], ids[0]
		}
	}

	cards := make(map[uuid.UUID]*card.Card, len(ids))
	for _, id := range ids {
		locked, err := lockCard(ctx, writer, id, a.UserID)
		if err != nil {
			return nil, err
		}
		cards[id] = locked
	}
	return cards, nil
}
