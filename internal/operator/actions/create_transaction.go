package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

// CreateTransaction inserts a purchase with its installment plan and
// refreshes the card's available limit in the same database transaction.
// Values must already be allocated (length == Installments, sum == Amount).
type CreateTransaction struct {
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

	// CreatedID is set on success.
	CreatedID uuid.UUID
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	locked, err := lockCard(ctx, writer, a.CardID, a.UserID)
	if err != nil {
		return err
	}

	duplicate, err := writer.Transaction.FindDuplicate(ctx, a.UserID, a.Name, a.Amount)
	if err != nil {
		return err
	}
	if duplicate != nil {
		return fmt.Errorf("%w: transaction %q with amount %s already exists", billing.ErrConflict, a.Name, a.Amount)
	}

	periods, err := billing.ScheduleInstallments(a.PurchaseDate, locked.PayDay, a.Installments)
	if err != nil {
		return err
	}

	id, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:             a.UserID,
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
	a.CreatedID = id

	return refreshAvailableLimit(ctx, writer, locked)
}

func encodeValues(values []decimal.Decimal) []string {
	encoded := make([]string, len(values))
	for i, v := range values {
		encoded[i] = v.String()
	}
	return encoded
}

func encodePeriods(periods []billing.BillingPeriod) []string {
	encoded := make([]string, len(periods))
	for i, p := range periods {
		encoded[i] = p.String()
	}
	return encoded
}
