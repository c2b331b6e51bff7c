package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
)

// Card is the service-level card model.
type Card struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Bank           string
	Network        string
	CreditLimit    decimal.Decimal
	AvailableLimit decimal.Decimal
	DueDay         int
	PayDay         int
	CreatedAt      time.Time
}

// CardService handles card business logic.
type CardService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewCardService creates a new CardService.
func NewCardService(store *storage.Storage, op actionProcessor) *CardService {
	return &CardService{storage: store, operator: op}
}

// CreateCard validates the billing-cycle days, persists the card and
// returns its ID.
func (s *CardService) CreateCard(ctx context.Context, c Card) (uuid.UUID, error) {
	if c.DueDay < 1 || c.DueDay > 31 {
		return uuid.Nil, fmt.Errorf("%w: due day must be within 1..31, got %d", billing.ErrInvalidArgument, c.DueDay)
	}
	if c.PayDay < 1 || c.PayDay > 31 {
		return uuid.Nil, fmt.Errorf("%w: pay day must be within 1..31, got %d", billing.ErrInvalidArgument, c.PayDay)
	}
	if !c.CreditLimit.IsPositive() {
		return uuid.Nil, fmt.Errorf("%w: credit limit must be positive, got %s", billing.ErrInvalidArgument, c.CreditLimit)
	}

	action := &actions.CreateCard{
		UserID:      c.UserID,
		Name:        c.Name,
		Bank:        c.Bank,
		Network:     c.Network,
		CreditLimit: c.CreditLimit,
		DueDay:      c.DueDay,
		PayDay:      c.PayDay,
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetCard retrieves one of the user's cards.
func (s *CardService) GetCard(ctx context.Context, id, userID uuid.UUID) (*Card, error) {
	row, err := s.storage.Cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, fmt.Errorf("%w: card %s", billing.ErrNotFound, id)
	}

	converted := convertCard(row)
	return &converted, nil
}

// ListCards returns all of the user's cards.
func (s *CardService) ListCards(ctx context.Context, userID uuid.UUID) ([]Card, error) {
	rows, err := s.storage.Cards.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Card, len(rows))
	for i, row := range rows {
		converted[i] = convertCard(row)
	}
	return converted, nil
}

// DeleteCard removes a card that has no transactions.
func (s *CardService) DeleteCard(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteCard{ID: id, UserID: userID})
}

func convertCard(row *card.Card) Card {
	return Card{
		ID:             row.ID,
		UserID:         row.UserID,
		Name:           row.Name,
		Bank:           row.Bank,
		Network:        row.Network,
		CreditLimit:    row.CreditLimit,
		AvailableLimit: row.AvailableLimit,
		DueDay:         row.DueDay,
		PayDay:         row.PayDay,
		CreatedAt:      row.CreatedAt,
	}
}
