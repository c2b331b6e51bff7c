package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
)

// PayInvoice registers a payment against an invoice. The invoice row is
// locked so concurrent payments accumulate instead of overwriting each
// other. Once the paid amount covers the total the invoice flips to PAID.
type PayInvoice struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal

	// PaidAmount and Status reflect the invoice state after the payment.
	PaidAmount decimal.Decimal
	Status     string
}

func (a *PayInvoice) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: payment amount must be positive, got %s", billing.ErrInvalidArgument, a.Amount)
	}

	locked, err := writer.Invoice.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if locked == nil || locked.UserID != a.UserID {
		return fmt.Errorf("%w: invoice %s", billing.ErrNotFound, a.ID)
	}

	paid := locked.PaidAmount.Add(a.Amount)
	status := locked.Status
	if paid.GreaterThanOrEqual(locked.TotalAmount) {
		status = invoice.StatusPaid
	}

	if err := writer.Invoice.UpdatePayment(ctx, a.ID, paid, status); err != nil {
		return err
	}

	a.PaidAmount = paid
	a.Status = status
	return nil
}
