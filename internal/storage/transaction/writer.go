package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// Insert creates a new transaction and returns its generated ID.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("transactions",
			"user_id", "card_id", "category_id", "dependent_id",
			"name", "description", "amount", "purchase_date",
			"installments", "installment_values", "installment_periods",
		),
		im.Values(psql.Arg(
			create.UserID, create.CardID, create.CategoryID, create.DependentID,
			create.Name, create.Description, create.Amount, create.PurchaseDate,
			create.Installments,
			pq.StringArray(create.InstallmentValues),
			pq.StringArray(create.InstallmentPeriods),
		)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
}

// Update replaces the mutable state of an existing transaction.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("card_id").ToArg(update.CardID),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.SetCol("dependent_id").ToArg(update.DependentID),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("purchase_date").ToArg(update.PurchaseDate),
		um.SetCol("installments").ToArg(update.Installments),
		um.SetCol("installment_values").ToArg(pq.StringArray(update.InstallmentValues)),
		um.SetCol("installment_periods").ToArg(pq.StringArray(update.InstallmentPeriods)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// Delete removes a transaction. Returns the number of rows removed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// FindDuplicate looks for another transaction by the same user with the same
// name and amount. Used as an idempotency guard on create.
func (w *Writer) FindDuplicate(ctx context.Context, userID uuid.UUID, name string, amount decimal.Decimal) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.Where(psql.Quote("amount").EQ(psql.Arg(amount))),
		sm.Limit(1),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}
