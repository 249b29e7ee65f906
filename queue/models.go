package queue

import (
	"context"
	"time"
)

// Task performs the network half of an action and returns its outcome.
type Task func(ctx context.Context) (any, error)

// Request represents one asynchronous action in flight.
type Request struct {
	ID           string
	Action       string
	Context      context.Context
	EnqueuedAt   time.Time
	ResponseChan chan RequestResult

	done chan struct{}
}

// Done is closed once the task has finished and its continuation has run.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until Done is closed or ctx ends.
func (r *Request) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RequestResult represents the outcome of processing a request.
type RequestResult struct {
	RequestID string
	Action    string
	Value     any
	Error     error
	Duration  time.Duration
}
