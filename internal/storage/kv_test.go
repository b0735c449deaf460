package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/liftlog/internal/storage"
)

// flakyBackend keeps values in a map and fails every call while broken.
type flakyBackend struct {
	mu     sync.Mutex
	data   map[string][]byte
	broken bool
	saves  int
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{data: make(map[string][]byte)}
}

var errBroken = errors.New("backend down")

func (b *flakyBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return nil, false, errBroken
	}
	v, ok := b.data[key]
	return v, ok, nil
}

func (b *flakyBackend) Save(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return errBroken
	}
	b.saves++
	b.data[key] = append([]byte(nil), value...)
	return nil
}

func (b *flakyBackend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.broken {
		return errBroken
	}
	delete(b.data, key)
	return nil
}

func (b *flakyBackend) stored(key string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	return string(v), ok
}

func (b *flakyBackend) saveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestKVMemoryOnly(t *testing.T) {
	kv := storage.NewKV(nil)

	assert.Equal(t, sample{Name: "fallback"}, storage.Get(kv, "missing", sample{Name: "fallback"}))

	kv.Set("k", sample{Name: "a", Count: 2})
	assert.Equal(t, sample{Name: "a", Count: 2}, storage.Get(kv, "k", sample{}))

	raw, ok := kv.GetRaw("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"a","count":2}`, string(raw))

	kv.Remove("k")
	_, ok = kv.GetRaw("k")
	assert.False(t, ok)
}

func TestKVWrongShapeFallsBack(t *testing.T) {
	kv := storage.NewKV(nil)
	kv.Set("k", []int{1, 2, 3})
	assert.Equal(t, sample{Name: "fb"}, storage.Get(kv, "k", sample{Name: "fb"}))
}

func TestKVFallsBackToMemory(t *testing.T) {
	backend := newFlakyBackend()
	kv := storage.NewKV(backend)

	kv.Set("before", 1)
	v, ok := backend.stored("before")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	backend.broken = true
	kv.Set("after", sample{Name: "kept"})
	assert.Equal(t, sample{Name: "kept"}, storage.Get(kv, "after", sample{}))
	assert.Equal(t, 1, storage.Get(kv, "before", 0))

	// Unknown keys read as missing while the backend is down.
	assert.Equal(t, -1, storage.Get(kv, "never", -1))

	kv.Remove("after")
	assert.Equal(t, sample{}, storage.Get(kv, "after", sample{}))
}

func TestKVReadsBackend(t *testing.T) {
	backend := newFlakyBackend()
	backend.data["profile"] = []byte(`{"name":"stored","count":7}`)

	kv := storage.NewKV(backend)
	assert.Equal(t, sample{Name: "stored", Count: 7}, storage.Get(kv, "profile", sample{}))

	// The value is cached, so an outage after the first read is invisible.
	backend.broken = true
	assert.Equal(t, sample{Name: "stored", Count: 7}, storage.Get(kv, "profile", sample{}))
}

func TestSQLiteStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "liftlog.db")
	st, err := storage.Open("file:" + path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", st.Driver())

	ctx := context.Background()
	require.NoError(t, st.Save(ctx, "b", []byte(`2`)))
	require.NoError(t, st.Save(ctx, "a", []byte(`1`)))
	require.NoError(t, st.Save(ctx, "a", []byte(`"one"`)))

	v, ok, err := st.Load(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `"one"`, string(v))

	_, ok, err = st.Load(ctx, "zzz")
	require.NoError(t, err)
	assert.False(t, ok)

	keys, err := st.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, st.Delete(ctx, "a"))
	keys, err = st.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)

	require.NoError(t, st.Close())

	// Reopening sees the same data.
	st, err = storage.Open("file:" + path)
	require.NoError(t, err)
	defer st.Close()
	kv := storage.NewKV(st)
	assert.Equal(t, 2, storage.Get(kv, "b", 0))
}

func TestClosedDatabaseFallsBackToMemory(t *testing.T) {
	st, err := storage.Open("file:" + filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	kv := storage.NewKV(st)
	kv.Set("k", sample{Name: "memory"})
	assert.Equal(t, sample{Name: "memory"}, storage.Get(kv, "k", sample{}))
}

func TestOpenAndDriver(t *testing.T) {
	_, err := storage.Open("")
	assert.Error(t, err)

	assert.Equal(t, "libsql", storage.DriverFor("libsql://db.turso.io?authToken=x"))
	assert.Equal(t, "libsql", storage.DriverFor("https://db.turso.io"))
	assert.Equal(t, "sqlite3", storage.DriverFor("file:./local.db"))
}

func TestQueueCoalescesAndFlushesOnClose(t *testing.T) {
	backend := newFlakyBackend()
	kv := storage.NewKV(backend)
	q := storage.NewQueue(kv, time.Hour)

	q.Put("k", sample{Count: 1})
	q.Put("k", sample{Count: 2})
	q.Put("other", 1)
	q.Delete("other")
	assert.Equal(t, 2, q.Pending())
	assert.Zero(t, backend.saveCount())

	q.Close()
	assert.Zero(t, q.Pending())
	assert.Equal(t, 1, backend.saveCount())
	v, ok := backend.stored("k")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"","count":2}`, v)

	// After Close writes go straight through.
	q.Put("late", true)
	v, ok = backend.stored("late")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestQueueEncodesAtPut(t *testing.T) {
	kv := storage.NewKV(nil)
	q := storage.NewQueue(kv, time.Hour)

	s := &sample{Count: 1}
	q.Put("k", s)
	s.Count = 99
	q.Flush()

	assert.Equal(t, 1, storage.Get(kv, "k", sample{}).Count)
	q.Close()
}

func TestQueueFlushesAfterDelay(t *testing.T) {
	backend := newFlakyBackend()
	q := storage.NewQueue(storage.NewKV(backend), 10*time.Millisecond)

	q.Put("k", 5)
	require.Eventually(t, func() bool {
		_, ok := backend.stored("k")
		return ok
	}, time.Second, 5*time.Millisecond)
	q.Close()
}

func TestQueueFailedFlushKeepsMemory(t *testing.T) {
	backend := newFlakyBackend()
	backend.broken = true
	kv := storage.NewKV(backend)
	q := storage.NewQueue(kv, time.Hour)

	q.Put("a", 1)
	q.Put("b", 2)
	q.Flush()

	assert.Zero(t, q.Pending())
	assert.Equal(t, 1, storage.Get(kv, "a", 0))
	assert.Equal(t, 2, storage.Get(kv, "b", 0))
	q.Close()
}
