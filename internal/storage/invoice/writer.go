package invoice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
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

// Upsert writes one rebuilt invoice total. On conflict with an existing
// (card, user, month, year) row only total_amount and due_date are
// overwritten; paid_amount and status are owned by the payment flow. Each
// rebuild is authoritative, so the total is replaced, never added to.
func (w *Writer) Upsert(ctx context.Context, upsert *InvoiceUpsert) error {
	q := psql.Insert(
		im.Into("invoices",
			"card_id", "user_id", "month", "year",
			"total_amount", "paid_amount", "due_date", "status",
		),
		im.Values(psql.Arg(
			upsert.CardID, upsert.UserID, upsert.Month, upsert.Year,
			upsert.TotalAmount, decimal.Zero, upsert.DueDate, StatusPending,
		)),
		im.OnConflict("card_id", "user_id", "month", "year").DoUpdate(
			im.SetExcluded("total_amount", "due_date"),
		),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// FindByIDForUpdate loads an invoice and locks its row until the transaction
// ends, so concurrent payments to the same invoice serialize.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("invoices"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Invoice]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UpdatePayment sets the accumulated paid amount and the resulting status.
func (w *Writer) UpdatePayment(ctx context.Context, id uuid.UUID, paid decimal.Decimal, status string) error {
	q := psql.Update(
		um.Table("invoices"),
		um.SetCol("paid_amount").ToArg(paid),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// MarkOverdue flips pending invoices whose due date has passed and which are
// not fully paid. Runs at the end of every rebuild.
func (w *Writer) MarkOverdue(ctx context.Context, now time.Time) error {
	q := psql.Update(
		um.Table("invoices"),
		um.SetCol("status").ToArg(StatusOverdue),
		um.Where(psql.Quote("status").EQ(psql.Arg(StatusPending))),
		um.Where(psql.Quote("due_date").LT(psql.Arg(now))),
		um.Where(psql.Quote("paid_amount").LT(psql.Quote("total_amount"))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}
