package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/config"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/category"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/dependent"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/invoice"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage/transaction"
)

// Storage exposes read access per entity and opens write transactions.
// Mutations never go through the readers; they run inside a Writer obtained
// from Write so derived state (the card available limit, invoice totals)
// changes atomically with the write that caused it.
type Storage struct {
	DB           bob.DB
	Cards        card.ICardReader
	Transactions transaction.ITransactionReader
	Invoices     invoice.IInvoiceReader
	Categories   category.ICategoryReader
	Dependents   dependent.IDependentReader
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           bobDB,
		Cards:        card.NewReader(bobDB),
		Transactions: transaction.NewReader(bobDB),
		Invoices:     invoice.NewReader(bobDB),
		Categories:   category.NewReader(bobDB),
		Dependents:   dependent.NewReader(bobDB),
	}
}

// Write begins a database transaction and returns a Writer scoped to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	writer := NewWriter(tx)
	return &writer, nil
}
