package manager

import (
	"sort"
	"sync"
	"time"
)

// ActionMetrics holds the in-flight counts for a single action.
type ActionMetrics struct {
	Action                 string
	QueueSize              int
	ProcessingCount        int
	LastLogTime            time.Time
	queueSizeChanged       bool
	processingCountChanged bool
	mu                     sync.Mutex
}

// InflightTracker counts queued and running tasks per action and logs the
// counts when they change. It never limits work.
type InflightTracker struct {
	metricsMap  map[string]*ActionMetrics
	mu          sync.Mutex
	logInterval time.Duration
	closed      chan struct{}
	closeOnce   sync.Once
}

// NewInflightTracker starts a tracker whose monitor logs at most once per
// logInterval per action. A zero interval uses one second.
func NewInflightTracker(logInterval time.Duration) *InflightTracker {
	if logInterval <= 0 {
		logInterval = time.Second
	}
	t := &InflightTracker{
		metricsMap:  make(map[string]*ActionMetrics),
		logInterval: logInterval,
		closed:      make(chan struct{}),
	}
	go t.monitorMetrics()
	return t
}

func (t *InflightTracker) metrics(action string) *ActionMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.metricsMap[action]
	if !ok {
		m = &ActionMetrics{Action: action}
		t.metricsMap[action] = m
	}
	return m
}

// Enqueued records a task accepted for action.
func (t *InflightTracker) Enqueued(action string) {
	t.metrics(action).incrementQueue()
}

// Started moves one task of action from queued to running.
func (t *InflightTracker) Started(action string) {
	m := t.metrics(action)
	m.decrementQueue()
	m.incrementProcessing()
}

// Finished records a running task of action as complete.
func (t *InflightTracker) Finished(action string) {
	t.metrics(action).decrementProcessing()
}

// Counts returns the current queued and running counts for action.
func (t *InflightTracker) Counts(action string) (queued, running int) {
	m := t.metrics(action)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.QueueSize, m.ProcessingCount
}

// monitorMetrics monitors changes in the metrics and logs them appropriately.
func (t *InflightTracker) monitorMetrics() {
	ticker := time.NewTicker(t.logInterval / 2) // Check twice per interval
	defer ticker.Stop()

	for {
		select {
		case <-t.closed:
			return
		case <-ticker.C:
		}

		t.mu.Lock()
		actions := make([]string, 0, len(t.metricsMap))
		for a := range t.metricsMap {
			actions = append(actions, a)
		}
		t.mu.Unlock()
		sort.Strings(actions)

		for _, a := range actions {
			metrics := t.metrics(a)
			metrics.mu.Lock()
			currentTime := time.Now()
			if (metrics.queueSizeChanged || metrics.processingCountChanged) &&
				currentTime.Sub(metrics.LastLogTime) >= t.logInterval {
				log.Debugf("Action: %s | Queued: %d | Running: %d",
					metrics.Action, metrics.QueueSize, metrics.ProcessingCount)
				metrics.LastLogTime = currentTime
				metrics.resetChangeFlags()
			}
			metrics.mu.Unlock()
		}
	}
}

// Methods for ActionMetrics

func (m *ActionMetrics) incrementQueue() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueueSize++
	m.queueSizeChanged = true
}

func (m *ActionMetrics) decrementQueue() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueueSize > 0 {
		m.QueueSize--
		m.queueSizeChanged = true
	}
}

func (m *ActionMetrics) incrementProcessing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProcessingCount++
	m.processingCountChanged = true
}

func (m *ActionMetrics) decrementProcessing() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ProcessingCount > 0 {
		m.ProcessingCount--
		m.processingCountChanged = true
	}
}

func (m *ActionMetrics) resetChangeFlags() {
	m.queueSizeChanged = false
	m.processingCountChanged = false
}

// Shutdown stops the monitor goroutine. It is safe to call more than once.
func (t *InflightTracker) Shutdown() {
	t.closeOnce.Do(func() {
		close(t.closed)
	})
}
