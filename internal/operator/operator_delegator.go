package operator

import (
	"context"
	"sync"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator/actions"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

const queueDepth = 1000

// OperatorDelegator owns the action queue and the pool of Operators behind
// it. Callers hand it an action through Process and get the commit or
// rollback outcome back.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan actionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan actionItem, queueDepth),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		op := NewOperator(d.storage, d.queue)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues an action and blocks until a worker commits or rolls it
// back, or the caller's context ends. The done channel is buffered so a
// worker never blocks on a caller that already gave up.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	item := actionItem{
		ctx:    ctx,
		action: action,
		done:   make(chan error, 1),
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-item.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
