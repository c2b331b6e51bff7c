package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

// actionProcessor runs one action inside a database transaction. Implemented
// by the operator delegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Card        *CardService
	Invoice     *InvoiceService
	Category    *CategoryService
	Dependent   *DependentService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, op),
		Card:        NewCardService(store, op),
		Invoice:     NewInvoiceService(store, op, logger),
		Category:    NewCategoryService(store, op),
		Dependent:   NewDependentService(store, op),
	}
}
