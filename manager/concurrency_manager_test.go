package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInflightTracker(t *testing.T) {
	tr := NewInflightTracker(5 * time.Millisecond)
	defer tr.Shutdown()

	tr.Enqueued("quiz_generator")
	tr.Enqueued("quiz_generator")
	tr.Started("quiz_generator")

	q, r := tr.Counts("quiz_generator")
	assert.Equal(t, 1, q)
	assert.Equal(t, 1, r)

	tr.Finished("quiz_generator")
	tr.Finished("quiz_generator")
	q, r = tr.Counts("quiz_generator")
	assert.Equal(t, 1, q)
	assert.Equal(t, 0, r, "counts never go negative")

	q, r = tr.Counts("class_summary")
	assert.Zero(t, q)
	assert.Zero(t, r)
}

func TestShutdownTwice(t *testing.T) {
	tr := NewInflightTracker(0)
	tr.Shutdown()
	assert.NotPanics(t, tr.Shutdown)
}
