package dependent

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Dependent is someone a user's purchase can be attributed to. A transaction
// without a dependent belongs to the user directly.
type Dependent struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// IDependentReader defines read operations on dependents.
type IDependentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Dependent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Dependent, error)
}

var columns = []any{"id", "user_id", "name", "created_at"}

var _ IDependentReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Dependent, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("dependents"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Dependent]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Dependent, error) {
	q := psql.Select(
		sm.Columns(columns...),
		sm.From("dependents"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("name").Asc(),
	)

	return bob.All(ctx, r.exec, q, scan.StructMapper[*Dependent]())
}

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

// Insert creates a dependent and returns the generated ID.
func (w *Writer) Insert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("dependents", "user_id", "name"),
		im.Values(psql.Arg(userID, name)),
		im.Returning("id"),
	)

	return bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
}
