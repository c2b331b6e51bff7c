package card

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []any{
	"id", "user_id", "name", "bank", "network",
	"credit_limit", "available_limit", "due_day", "pay_day", "created_at",
}

var _ ICardReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a card by primary key. Returns nil when no card exists.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Card, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("cards"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Card]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// ListAll returns every card. Used by the invoice rebuild batch to resolve
// pay days and due days.
func (r *Reader) ListAll(ctx context.Context) ([]*Card, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("cards"),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[*Card]())
}

// ListByUser returns all of a user's cards ordered by name.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Card, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("cards"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[*Card]())
}
