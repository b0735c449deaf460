package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Backend is the durable side of the adapter.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// KV persists JSON values by key. Backend failures are logged and the
// adapter falls back to its in-memory copy, so callers never see them.
type KV struct {
	backend Backend
	timeout time.Duration

	mu     sync.Mutex
	memory map[string][]byte
}

// NewKV wraps backend. A nil backend gives a memory-only adapter.
func NewKV(backend Backend) *KV {
	return &KV{
		backend: backend,
		timeout: 5 * time.Second,
		memory:  make(map[string][]byte),
	}
}

func (kv *KV) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), kv.timeout)
}

// raw returns the stored bytes. Values written by this process win over
// the backend, which may have missed a failed write.
func (kv *KV) raw(key string) ([]byte, bool) {
	kv.mu.Lock()
	data, ok := kv.memory[key]
	kv.mu.Unlock()
	if ok || kv.backend == nil {
		return data, ok
	}

	ctx, cancel := kv.ctx()
	defer cancel()
	data, ok, err := kv.backend.Load(ctx, key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage read failed, using memory")
		return nil, false
	}
	if ok {
		kv.mu.Lock()
		kv.memory[key] = data
		kv.mu.Unlock()
	}
	return data, ok
}

// Get decodes the value under key into T, or returns fallback when it is
// missing or unreadable.
func Get[T any](kv *KV, key string, fallback T) T {
	data, ok := kv.raw(key)
	if !ok {
		return fallback
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("stored value is not valid json")
		return fallback
	}
	return v
}

// GetRaw returns the stored JSON under key.
func (kv *KV) GetRaw(key string) (json.RawMessage, bool) {
	data, ok := kv.raw(key)
	return json.RawMessage(data), ok
}

func (kv *KV) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("failed to encode value")
		return
	}
	if err := kv.save(key, data); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage write failed, kept in memory")
	}
}

func (kv *KV) Remove(key string) {
	if err := kv.remove(key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("storage delete failed")
	}
}

// save always updates memory; the error only reports the backend.
func (kv *KV) save(key string, data []byte) error {
	kv.mu.Lock()
	kv.memory[key] = data
	kv.mu.Unlock()

	if kv.backend == nil {
		return nil
	}
	ctx, cancel := kv.ctx()
	defer cancel()
	if err := kv.backend.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (kv *KV) remove(key string) error {
	kv.mu.Lock()
	delete(kv.memory, key)
	kv.mu.Unlock()

	if kv.backend == nil {
		return nil
	}
	ctx, cancel := kv.ctx()
	defer cancel()
	if err := kv.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
