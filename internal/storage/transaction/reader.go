package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "user_id", "card_id", "category_id", "dependent_id",
	"name", "description", "amount", "purchase_date",
	"installments", "installment_values", "installment_periods", "created_at",
}

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key. Returns nil when no row exists.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns transactions matching the filter, newest first. The query asks
// for one row past the limit so callers can detect another page.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}

	if filter.CardID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("card_id").EQ(psql.Arg(*filter.CardID))))
	}
	if filter.CategoryID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}

	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	return bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// ListAll returns every transaction. Used by the invoice rebuild batch.
func (r *Reader) ListAll(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("transactions"),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[*Transaction]())
}

// SumAmountByCard returns the sum of full transaction amounts for a card.
// This is the outstanding principal the available limit is derived from.
func (r *Reader) SumAmountByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("coalesce(sum(amount), 0)")),
		sm.From("transactions"),
		sm.Where(psql.Quote("card_id").EQ(psql.Arg(cardID))),
	)

	return bob.One(ctx, r.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}
