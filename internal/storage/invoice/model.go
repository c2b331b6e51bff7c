package invoice

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Invoice statuses.
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusOverdue = "OVERDUE"
)

// Invoice is the aggregated per-card-per-user-per-month total of installment
// amounts. Rows are written only by the rebuild batch and the payment
// operation, never directly by transaction writes.
type Invoice struct {
	ID          uuid.UUID       `db:"id"`
	CardID      uuid.UUID       `db:"card_id"`
	UserID      uuid.UUID       `db:"user_id"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PaidAmount  decimal.Decimal `db:"paid_amount"`
	DueDate     time.Time       `db:"due_date"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

// InvoiceUpsert is one rebuilt invoice total. The rebuild overwrites
// total_amount on conflict; paid_amount and status survive.
type InvoiceUpsert struct {
	CardID      uuid.UUID
	UserID      uuid.UUID
	Month       int
	Year        int
	TotalAmount decimal.Decimal
	DueDate     time.Time
}

// InvoiceFilter specifies filters for listing invoices.
type InvoiceFilter struct {
	UserID uuid.UUID
	CardID *uuid.UUID
	Month  *int
	Year   *int
}

// IInvoiceReader defines read operations on invoices.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IInvoiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, filter *InvoiceFilter) ([]*Invoice, error)
}
