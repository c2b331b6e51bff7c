package operator

import (
	"context"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

type actionItem struct {
	ctx    context.Context
	action actions.IAction
	done   chan error
}

// Operator is one worker draining the shared queue. Every action runs inside
// its own database transaction, so derived state such as a card's available
// limit commits together with the write that changed it, or not at all.
type Operator struct {
	storage *storage.Storage
	queue   chan actionItem
}

func NewOperator(s *storage.Storage, queue chan actionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run drains the queue until it is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.done <- o.perform(item.ctx, item.action)
	}
}

func (o *Operator) perform(ctx context.Context, action actions.IAction) error {
	writer, err := o.storage.Write(ctx)
	if err != nil {
		return err
	}

	if err := action.Perform(ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}
