package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is the service-level purchase model. InstallmentValues and
// InstallmentPeriods are position-aligned and always have Installments
// entries once persisted.
type Transaction struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CardID             uuid.UUID
	CategoryID         uuid.UUID
	DependentID        *uuid.UUID
	Name               string
	Description        string
	Amount             decimal.Decimal
	PurchaseDate       time.Time
	Installments       int
	InstallmentValues  []decimal.Decimal
	InstallmentPeriods []string
	CreatedAt          time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	CardID     *uuid.UUID
	CategoryID *uuid.UUID
}
