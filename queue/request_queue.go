package queue

import (
	"context"
	"sync"
	"time"

	"deskclient/backend"
	"deskclient/manager"

	"github.com/google/uuid"
)

// Runner executes each enqueued request on its own goroutine. Requests are
// independent: there is no ordering between them and none is cancelled by
// another.
type Runner struct {
	base    context.Context
	tracker *manager.InflightTracker
	wg      sync.WaitGroup
}

// NewRunner creates a Runner whose tasks derive their context from base.
// tracker may be nil.
func NewRunner(base context.Context, tracker *manager.InflightTracker) *Runner {
	if base == nil {
		base = context.Background()
	}
	return &Runner{
		base:    base,
		tracker: tracker,
	}
}

// Enqueue schedules task and returns immediately. When the task finishes its
// result is offered on the request's ResponseChan, then is passed to then
// (which may be nil), and finally the request's Done channel is closed.
func (rq *Runner) Enqueue(action string, task Task, then func(RequestResult)) *Request {
	id := uuid.NewString()
	req := &Request{
		ID:           id,
		Action:       action,
		Context:      backend.WithRequestID(rq.base, id),
		EnqueuedAt:   time.Now(),
		ResponseChan: make(chan RequestResult, 1),
		done:         make(chan struct{}),
	}

	if rq.tracker != nil {
		rq.tracker.Enqueued(action)
	}
	log.Debugf("Enqueued %s (%s)", action, id)

	rq.wg.Add(1)
	go rq.process(req, task, then)
	return req
}

// Wait blocks until every request enqueued so far has completed.
func (rq *Runner) Wait() {
	rq.wg.Wait()
}

// Completed returns a request that has already finished without running
// anything, for actions a guard decided to skip.
func Completed(action string) *Request {
	req := &Request{
		Action:       action,
		EnqueuedAt:   time.Now(),
		ResponseChan: make(chan RequestResult),
		done:         make(chan struct{}),
	}
	close(req.ResponseChan)
	close(req.done)
	return req
}
