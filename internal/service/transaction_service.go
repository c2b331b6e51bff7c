package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService handles purchase business logic. Installment amounts
// are allocated here; scheduling and the available-limit refresh happen
// inside the operator action so they share the card's row lock.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op actionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// CreateTransaction allocates the installment values, persists the purchase
// and returns its ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, tx Transaction) (uuid.UUID, error) {
	values, err := billing.Allocate(tx.Amount, tx.Installments, tx.InstallmentValues)
	if err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{
		UserID:       tx.UserID,
		CardID:       tx.CardID,
		CategoryID:   tx.CategoryID,
		DependentID:  tx.DependentID,
		Name:         tx.Name,
		Description:  tx.Description,
		Amount:       tx.Amount,
		PurchaseDate: tx.PurchaseDate,
		Installments: tx.Installments,
		Values:       values,
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// UpdateTransaction reallocates and persists the replacement state.
func (s *TransactionService) UpdateTransaction(ctx context.Context, tx Transaction) error {
	values, err := billing.Allocate(tx.Amount, tx.Installments, tx.InstallmentValues)
	if err != nil {
		return err
	}

	return s.operator.Process(ctx, &actions.UpdateTransaction{
		ID:           tx.ID,
		UserID:       tx.UserID,
		CardID:       tx.CardID,
		CategoryID:   tx.CategoryID,
		DependentID:  tx.DependentID,
		Name:         tx.Name,
		Description:  tx.Description,
		Amount:       tx.Amount,
		PurchaseDate: tx.PurchaseDate,
		Installments: tx.Installments,
		Values:       values,
	})
}

// DeleteTransaction removes a purchase owned by the user.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id, UserID: userID})
}

// ListTransactions returns a page of the user's transactions using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter *TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	storageFilter := &transaction.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}
	if filter != nil {
		storageFilter.CardID = filter.CardID
		storageFilter.CategoryID = filter.CategoryID
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i], err = convertTransaction(row)
		if err != nil {
			return nil, nil, err
		}
	}

	return converted, nextCursor, nil
}

// GetTransaction retrieves one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil || row.UserID != userID {
		return nil, billing.ErrNotFound
	}

	converted, err := convertTransaction(row)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func convertTransaction(row *transaction.Transaction) (Transaction, error) {
	values := make([]decimal.Decimal, len(row.InstallmentValues))
	for i, raw := range row.InstallmentValues {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return Transaction{}, err
		}
		values[i] = parsed
	}

	return Transaction{
		ID:                 row.ID,
		UserID:             row.UserID,
		CardID:             row.CardID,
		CategoryID:         row.CategoryID,
		DependentID:        row.DependentID,
		Name:               row.Name,
		Description:        row.Description,
		Amount:             row.Amount,
		PurchaseDate:       row.PurchaseDate,
		Installments:       row.Installments,
		InstallmentValues:  values,
		InstallmentPeriods: row.InstallmentPeriods,
		CreatedAt:          row.CreatedAt,
	}, nil
}
