package storage

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// DefaultWriteDelay matches the debounce used for interactive edits.
const DefaultWriteDelay = 500 * time.Millisecond

// Queue defers writes to a KV. Puts for the same key coalesce into the
// latest value; a single timer flushes everything pending.
type Queue struct {
	kv    *KV
	delay time.Duration

	// flushMu orders flushes so an older batch never lands after a newer one.
	flushMu sync.Mutex

	mu      sync.Mutex
	pending map[string]json.RawMessage
	removed map[string]bool
	timer   *time.Timer
	closed  bool
}

func NewQueue(kv *KV, delay time.Duration) *Queue {
	if delay < 0 {
		delay = 0
	}
	return &Queue{
		kv:      kv,
		delay:   delay,
		pending: make(map[string]json.RawMessage),
		removed: make(map[string]bool),
	}
}

// Put schedules value to be written under key. The value is encoded
// right away, so later mutations of it are not picked up by the flush.
func (q *Queue) Put(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("failed to encode queued value")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.kv.Set(key, json.RawMessage(data))
		return
	}
	delete(q.removed, key)
	q.pending[key] = json.RawMessage(data)
	q.scheduleLocked()
}

// Delete schedules key for removal.
func (q *Queue) Delete(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.kv.Remove(key)
		return
	}
	delete(q.pending, key)
	q.removed[key] = true
	q.scheduleLocked()
}

func (q *Queue) scheduleLocked() {
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.delay, q.Flush)
}

// Pending reports how many keys wait for the next flush.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) + len(q.removed)
}

// Flush writes every pending value now.
func (q *Queue) Flush() {
	q.flushMu.Lock()
	defer q.flushMu.Unlock()

	q.mu.Lock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	pending := q.pending
	removed := q.removed
	q.pending = make(map[string]json.RawMessage)
	q.removed = make(map[string]bool)
	q.mu.Unlock()

	if len(pending) == 0 && len(removed) == 0 {
		return
	}

	keys := make([]string, 0, len(pending))
	for k := range pending {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs error
	for _, k := range keys {
		errs = multierr.Append(errs, q.kv.save(k, pending[k]))
	}
	for k := range removed {
		errs = multierr.Append(errs, q.kv.remove(k))
	}

	log := logrus.WithFields(logrus.Fields{
		"written": len(pending),
		"removed": len(removed),
	})
	if errs != nil {
		log.WithError(errs).Warnf("storage queue flushed with %d failures, values kept in memory", len(multierr.Errors(errs)))
		return
	}
	log.Debug("storage queue flushed")
}

// Close flushes and makes later puts write through immediately.
func (q *Queue) Close() {
	q.Flush()
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	// Catch anything queued between the first flush and closing.
	q.Flush()
}
