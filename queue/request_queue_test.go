package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"deskclient/backend"
	"deskclient/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, req *Request) {
	t.Helper()
	select {
	case <-req.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("request %s did not complete", req.ID)
	}
}

func TestEnqueueDeliversResultThenContinuation(t *testing.T) {
	r := NewRunner(context.Background(), nil)

	var seen RequestResult
	var gotID string
	req := r.Enqueue("quiz_generator", func(ctx context.Context) (any, error) {
		gotID = backend.RequestIDFromContext(ctx)
		return "quiz", nil
	}, func(res RequestResult) {
		seen = res
	})
	waitDone(t, req)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, req.ID, gotID)
	assert.Equal(t, "quiz", seen.Value)
	assert.NoError(t, seen.Error)
	assert.Equal(t, req.ID, seen.RequestID)

	res, ok := <-req.ResponseChan
	require.True(t, ok)
	assert.Equal(t, "quiz", res.Value)
}

func TestEnqueueReturnsBeforeTaskFinishes(t *testing.T) {
	r := NewRunner(context.Background(), nil)
	release := make(chan struct{})

	req := r.Enqueue("class_summary", func(ctx context.Context) (any, error) {
		<-release
		return nil, errors.New("backend down")
	}, nil)

	select {
	case <-req.Done():
		t.Fatal("request completed before the task was released")
	default:
	}
	close(release)
	waitDone(t, req)

	res := <-req.ResponseChan
	assert.EqualError(t, res.Error, "backend down")
}

func TestOverlappingRequestsLastCompletionWins(t *testing.T) {
	r := NewRunner(context.Background(), nil)
	slow := make(chan struct{})
	var rendered []string
	done := make(chan string, 2)

	first := r.Enqueue("visual_generator", func(ctx context.Context) (any, error) {
		<-slow
		return "first", nil
	}, func(res RequestResult) { done <- res.Value.(string) })
	second := r.Enqueue("visual_generator", func(ctx context.Context) (any, error) {
		return "second", nil
	}, func(res RequestResult) { done <- res.Value.(string) })

	waitDone(t, second)
	close(slow)
	waitDone(t, first)
	r.Wait()
	close(done)
	for v := range done {
		rendered = append(rendered, v)
	}

	assert.Equal(t, []string{"second", "first"}, rendered)
}

func TestPanickingTaskCompletesWithError(t *testing.T) {
	r := NewRunner(context.Background(), nil)
	req := r.Enqueue("pdf_summary", func(ctx context.Context) (any, error) {
		panic("nil map")
	}, nil)
	waitDone(t, req)

	res := <-req.ResponseChan
	assert.ErrorContains(t, res.Error, "pdf_summary task panicked")
}

func TestTrackerCounts(t *testing.T) {
	tracker := manager.NewInflightTracker(10 * time.Millisecond)
	defer tracker.Shutdown()
	r := NewRunner(context.Background(), tracker)

	release := make(chan struct{})
	started := make(chan struct{})
	req := r.Enqueue("start_recording", func(ctx context.Context) (any, error) {
		close(started)
		<-release
		return nil, nil
	}, nil)

	<-started
	queued, running := tracker.Counts("start_recording")
	assert.Equal(t, 0, queued)
	assert.Equal(t, 1, running)

	close(release)
	waitDone(t, req)
	r.Wait()
	queued, running = tracker.Counts("start_recording")
	assert.Equal(t, 0, queued)
	assert.Equal(t, 0, running)
}

func TestCompleted(t *testing.T) {
	req := Completed("stop_recording")
	waitDone(t, req)
	_, ok := <-req.ResponseChan
	assert.False(t, ok)
	assert.NoError(t, req.Wait(context.Background()))
}
