package actions

import (
	"context"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

// IAction is one unit of mutation. Perform runs inside a database
// transaction owned by the operator; returning an error rolls the whole
// transaction back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
