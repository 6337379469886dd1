package storage

import (
	"context"
	"io"
	"log"

	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// FallbackStore serves requests from a durable store and falls back to a
// memory store whenever the durable store fails. Writes always land in the
// memory store too, so reads after a failure see the latest value.
type FallbackStore struct {
	primary  ports.KeyValueStore
	memory   *MemoryStore
	logger   *log.Logger
	degraded bool
}

var _ ports.KeyValueStore = (*FallbackStore)(nil)

// NewFallbackStore wraps primary. A nil primary runs on memory alone.
func NewFallbackStore(primary ports.KeyValueStore, logger *log.Logger) *FallbackStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FallbackStore{
		primary:  primary,
		memory:   NewMemoryStore(),
		logger:   logger,
		degraded: primary == nil,
	}
}

// Degraded reports whether any durable operation has failed.
func (f *FallbackStore) Degraded() bool {
	return f.degraded
}

// GetItem reads from the durable store and mirrors the value into memory.
// After a failure it serves reads from memory.
func (f *FallbackStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if f.primary != nil && !f.degraded {
		v, ok, err := f.primary.GetItem(ctx, key)
		if err == nil {
			if ok {
				_ = f.memory.SetItem(ctx, key, v)
			}
			return v, ok, nil
		}
		f.fail("get", key, err)
	}
	return f.memory.GetItem(ctx, key)
}

// SetItem writes to memory and, until it degrades, to the durable store.
func (f *FallbackStore) SetItem(ctx context.Context, key, value string) error {
	_ = f.memory.SetItem(ctx, key, value)
	if f.primary != nil && !f.degraded {
		if err := f.primary.SetItem(ctx, key, value); err != nil {
			f.fail("set", key, err)
		}
	}
	return nil
}

// RemoveItem deletes key from both stores.
func (f *FallbackStore) RemoveItem(ctx context.Context, key string) error {
	_ = f.memory.RemoveItem(ctx, key)
	if f.primary != nil && !f.degraded {
		if err := f.primary.RemoveItem(ctx, key); err != nil {
			f.fail("remove", key, err)
		}
	}
	return nil
}

// Close closes the durable store.
func (f *FallbackStore) Close() error {
	if f.primary == nil {
		return nil
	}
	return f.primary.Close()
}

func (f *FallbackStore) fail(op, key string, err error) {
	f.logger.Printf("storage %s %s failed, continuing in memory: %v", op, key, err)
	f.degraded = true
}
