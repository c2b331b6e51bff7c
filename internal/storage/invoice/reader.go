package invoice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "card_id", "user_id", "month", "year",
	"total_amount", "paid_amount", "due_date", "status", "created_at",
}

var _ IInvoiceReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves an invoice by primary key. Returns nil when no row exists.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("invoices"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Invoice]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns a user's invoices matching the filter, most recent period first.
func (r *Reader) List(ctx context.Context, filter *InvoiceFilter) ([]*Invoice, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("invoices"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}

	if filter.CardID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("card_id").EQ(psql.Arg(*filter.CardID))))
	}
	if filter.Month != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("month").EQ(psql.Arg(*filter.Month))))
	}
	if filter.Year != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("year").EQ(psql.Arg(*filter.Year))))
	}

	queryMods = append(queryMods,
		sm.OrderBy("year").Desc(),
		sm.OrderBy("month").Desc(),
		sm.OrderBy("card_id").Asc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Invoice]())
}
