package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/category"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/dependent"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

// Writer bundles the per-entity writers of one database transaction.
type Writer struct {
	tx          bob.Tx
	Card        *card.Writer
	Transaction *transaction.Writer
	Invoice     *invoice.Writer
	Category    *category.Writer
	Dependent   *dependent.Writer
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:          tx,
		Card:        card.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Invoice:     invoice.NewWriter(tx),
		Category:    category.NewWriter(tx),
		Dependent:   dependent.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
