package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/billing"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
)

func newTestCardService(t *testing.T) (*CardService, *mockCardReader, *mockProcessor) {
	t.Helper()
	reader := &mockCardReader{}
	processor := &mockProcessor{}
	store := &storage.Storage{Cards: reader}
	svc := NewCardService(store, processor)
	t.Cleanup(func() {
		reader.AssertExpectations(t)
		processor.AssertExpectations(t)
	})
	return svc, reader, processor
}

func validCard(userID uuid.UUID) Card {
	return Card{
		UserID:      userID,
		Name:        "Platinum",
		Bank:        "Acme Bank",
		Network:     "VISA",
		CreditLimit: decimal.RequireFromString("5000.00"),
		DueDay:      15,
		PayDay:      10,
	}
}

func TestCreateCard_Success(t *testing.T) {
	svc, _, processor := newTestCardService(t)

	userID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateCard)
		return ok && create.UserID == userID && create.Name == "Platinum" && create.PayDay == 10
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateCard).CreatedID = expectedID
	}).Return(nil)

	id, err := svc.CreateCard(context.Background(), validCard(userID))

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateCard_DayValidation(t *testing.T) {
	svc, _, _ := newTestCardService(t)
	userID := uuid.Must(uuid.NewV4())

	badDue := validCard(userID)
	badDue.DueDay = 0
	_, err := svc.CreateCard(context.Background(), badDue)
	assert.ErrorIs(t, err, billing.ErrInvalidArgument)

	badPay := validCard(userID)
	badPay.PayDay = 32
	_, err = svc.CreateCard(context.Background(), badPay)
	assert.ErrorIs(t, err, billing.ErrInvalidArgument)
}

func TestCreateCard_NonPositiveLimit(t *testing.T) {
	svc, _, _ := newTestCardService(t)

	bad := validCard(uuid.Must(uuid.NewV4()))
	bad.CreditLimit = decimal.Zero

	_, err := svc.CreateCard(context.Background(), bad)
	assert.ErrorIs(t, err, billing.ErrInvalidArgument)
}

func TestCreateCard_OperatorError(t *testing.T) {
	svc, _, processor := newTestCardService(t)

	processor.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	id, err := svc.CreateCard(context.Background(), validCard(uuid.Must(uuid.NewV4())))

	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestGetCard_WrongUser(t *testing.T) {
	svc, reader, _ := newTestCardService(t)

	row := &card.Card{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: uuid.Must(uuid.NewV4()),
		Name:   "Platinum",
	}
	reader.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	got, err := svc.GetCard(context.Background(), row.ID, uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, billing.ErrNotFound)
	assert.Nil(t, got)
}

func TestListCards_Success(t *testing.T) {
	svc, reader, _ := newTestCardService(t)
	userID := uuid.Must(uuid.NewV4())

	rows := []*card.Card{
		{
			ID:             uuid.Must(uuid.NewV4()),
			UserID:         userID,
			Name:           "Platinum",
			Bank:           "Acme Bank",
			Network:        "VISA",
			CreditLimit:    decimal.RequireFromString("5000.00"),
			AvailableLimit: decimal.RequireFromString("4500.00"),
			DueDay:         15,
			PayDay:         10,
			CreatedAt:      time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	reader.On("ListByUser", mock.Anything, userID).Return(rows, nil)

	cards, err := svc.ListCards(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Equal(t, rows[0].ID, cards[0].ID)
	assert.True(t, cards[0].AvailableLimit.Equal(decimal.RequireFromString("4500.00")))
}

func TestDeleteCard_DispatchesAction(t *testing.T) {
	svc, _, processor := newTestCardService(t)

	id := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteCard)
		return ok && del.ID == id && del.UserID == userID
	})).Return(nil)

	assert.NoError(t, svc.DeleteCard(context.Background(), id, userID))
}
