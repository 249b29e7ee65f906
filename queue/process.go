package queue

import (
	"fmt"
	"time"
)

// process runs a single request to completion.
func (rq *Runner) process(req *Request, task Task, then func(RequestResult)) {
	defer rq.wg.Done()
	defer close(req.done)

	if rq.tracker != nil {
		rq.tracker.Started(req.Action)
		defer rq.tracker.Finished(req.Action)
	}

	start := time.Now()
	value, err := runTask(req, task)

	// Prepare the result
	result := RequestResult{
		RequestID: req.ID,
		Action:    req.Action,
		Value:     value,
		Error:     err,
		Duration:  time.Since(start),
	}

	log.Debugf("Finished %s (%s) in %s", req.Action, req.ID, result.Duration)

	req.ResponseChan <- result
	close(req.ResponseChan)

	if then != nil {
		then(result)
	}
}

// runTask turns a panicking task into an error so the request still
// completes.
func runTask(req *Request, task Task) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s task panicked: %v", req.Action, r)
		}
	}()
	return task(req.Context)
}
