package card

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Card represents a credit card record. AvailableLimit is derived: it always
// equals CreditLimit minus the sum of the card's transaction amounts and is
// refreshed inside the same database transaction as any write that changes
// that sum.
type Card struct {
	ID             uuid.UUID       `db:"id"`
	UserID         uuid.UUID       `db:"user_id"`
	Name           string          `db:"name"`
	Bank           string          `db:"bank"`
	Network        string          `db:"network"`
	CreditLimit    decimal.Decimal `db:"credit_limit"`
	AvailableLimit decimal.Decimal `db:"available_limit"`
	DueDay         int             `db:"due_day"`
	PayDay         int             `db:"pay_day"`
	CreatedAt      time.Time       `db:"created_at"`
}

// CardCreate is the input for creating a new card.
type CardCreate struct {
	UserID      uuid.UUID
	Name        string
	Bank        string
	Network     string
	CreditLimit decimal.Decimal
	DueDay      int
	PayDay      int
}

// ICardReader defines read operations on cards.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ICardReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Card, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Card, error)
}
