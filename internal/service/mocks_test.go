package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/category"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/dependent"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) FindByID(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionReader) ListAll(ctx context.Context) ([]*transaction.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionReader) SumAmountByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, cardID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockCardReader struct {
	mock.Mock
}

func (m *mockCardReader) FindByID(ctx context.Context, id uuid.UUID) (*card.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*card.Card), args.Error(1)
}

func (m *mockCardReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*card.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*card.Card), args.Error(1)
}

type mockInvoiceReader struct {
	mock.Mock
}

func (m *mockInvoiceReader) FindByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}

func (m *mockInvoiceReader) List(ctx context.Context, filter *invoice.InvoiceFilter) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}

type mockCategoryReader struct {
	mock.Mock
}

func (m *mockCategoryReader) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*category.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

type mockDependentReader struct {
	mock.Mock
}

func (m *mockDependentReader) FindByID(ctx context.Context, id uuid.UUID) (*dependent.Dependent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dependent.Dependent), args.Error(1)
}

func (m *mockDependentReader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dependent.Dependent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dependent.Dependent), args.Error(1)
}
