package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
)

// Invoice is the service-level invoice model.
type Invoice struct {
	ID          uuid.UUID
	CardID      uuid.UUID
	UserID      uuid.UUID
	Month       int
	Year        int
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	DueDate     time.Time
	Status      string
	CreatedAt   time.Time
}

// InvoiceFilter narrows an invoice listing.
type InvoiceFilter struct {
	CardID *uuid.UUID
	Month  *int
	Year   *int
}

// Payment is the state of an invoice after a payment was applied.
type Payment struct {
	PaidAmount decimal.Decimal
	Status     string
}

// InvoiceService handles invoice business logic. Rebuild runs are collapsed
// through a singleflight group so the cron trigger and manual triggers never
// aggregate concurrently.
type InvoiceService struct {
	storage  *storage.Storage
	operator actionProcessor
	logger   *logrus.Logger
	group    singleflight.Group
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(store *storage.Storage, op actionProcessor, logger *logrus.Logger) *InvoiceService {
	return &InvoiceService{storage: store, operator: op, logger: logger}
}

// ListInvoices returns the user's invoices, newest billing period first.
func (s *InvoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, filter *InvoiceFilter) ([]Invoice, error) {
	storageFilter := &invoice.InvoiceFilter{UserID: userID}
	if filter != nil {
		storageFilter.CardID = filter.CardID
		storageFilter.Month = filter.Month
		storageFilter.Year = filter.Year
	}

	rows, err := s.storage.Invoices.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Invoice, len(rows))
	for i, row := range rows {
		converted[i] = convertInvoice(row)
	}
	return converted, nil
}

// Rebuild re-aggregates every invoice from the transaction set and returns
// the number of invoice rows written. Concurrent callers share one run.
func (s *InvoiceService) Rebuild(ctx context.Context) (int, error) {
	v, err, _ := s.group.Do("rebuild", func() (any, error) {
		action := &actions.RebuildInvoices{Logger: s.logger}
		if err := s.operator.Process(ctx, action); err != nil {
			return 0, err
		}
		return action.Upserted, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// PayInvoice applies a payment and returns the resulting paid amount and
// status.
func (s *InvoiceService) PayInvoice(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) (*Payment, error) {
	action := &actions.PayInvoice{ID: id, UserID: userID, Amount: amount}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return &Payment{PaidAmount: action.PaidAmount, Status: action.Status}, nil
}

func convertInvoice(row *invoice.Invoice) Invoice {
	return Invoice{
		ID:          row.ID,
		CardID:      row.CardID,
		UserID:      row.UserID,
		Month:       row.Month,
		Year:        row.Year,
		TotalAmount: row.TotalAmount,
		PaidAmount:  row.PaidAmount,
		DueDate:     row.DueDate,
		Status:      row.Status,
		CreatedAt:   row.CreatedAt,
	}
}
