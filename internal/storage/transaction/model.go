package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Transaction represents a purchase record. InstallmentValues and
// InstallmentPeriods are position-aligned: value i is billed in period i.
// Both always have exactly Installments entries and the values sum to Amount.
type Transaction struct {
	ID                 uuid.UUID       `db:"id"`
	UserID             uuid.UUID       `db:"user_id"`
	CardID             uuid.UUID       `db:"card_id"`
	CategoryID         uuid.UUID       `db:"category_id"`
	DependentID        *uuid.UUID      `db:"dependent_id"`
	Name               string          `db:"name"`
	Description        string          `db:"description"`
	Amount             decimal.Decimal `db:"amount"`
	PurchaseDate       time.Time       `db:"purchase_date"`
	Installments       int             `db:"installments"`
	InstallmentValues  pq.StringArray  `db:"installment_values"`
	InstallmentPeriods pq.StringArray  `db:"installment_periods"`
	CreatedAt          time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID             uuid.UUID
	CardID             uuid.UUID
	CategoryID         uuid.UUID
	DependentID        *uuid.UUID
	Name               string
	Description        string
	Amount             decimal.Decimal
	PurchaseDate       time.Time
	Installments       int
	InstallmentValues  []string
	InstallmentPeriods []string
}

// TransactionUpdate carries the full replacement state for an existing row.
type TransactionUpdate struct {
	CardID             uuid.UUID
	CategoryID         uuid.UUID
	DependentID        *uuid.UUID
	Name               string
	Description        string
	Amount             decimal.Decimal
	PurchaseDate       time.Time
	Installments       int
	InstallmentValues  []string
	InstallmentPeriods []string
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	CardID          *uuid.UUID
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ITransactionReader defines read operations on transactions.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	ListAll(ctx context.Context) ([]*Transaction, error)
	SumAmountByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)
}
