package card

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
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

// FindByIDForUpdate loads a card and locks its row until the transaction
// ends. Concurrent writers to the same card serialize on this lock.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Card, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("cards"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)

	row, err := bob.One(ctx, w.tx, q, scan.StructMapper[*Card]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a card with its available limit initialized to the full
// credit limit and returns the generated ID.
func (w *Writer) Insert(ctx context.Context, create *CardCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("cards",
			"user_id", "name", "bank", "network",
			"credit_limit", "available_limit", "due_day", "pay_day",
		),
		im.Values(psql.Arg(
			create.UserID, create.Name, create.Bank, create.Network,
			create.CreditLimit, create.CreditLimit, create.DueDay, create.PayDay,
		)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
}

// UpdateAvailableLimit overwrites the card's derived available limit.
func (w *Writer) UpdateAvailableLimit(ctx context.Context, id uuid.UUID, available decimal.Decimal) error {
	q := psql.Update(
		um.Table("cards"),
		um.SetCol("available_limit").ToArg(available),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	_, err := bob.Exec(ctx, w.tx, q)
	return err
}

// Delete removes a card owned by the user. Returns the number of rows removed.
func (w *Writer) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From("cards"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id)).And(psql.Quote("user_id").EQ(psql.Arg(userID)))),
	)

	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
