// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"studyplan/internal/planner"
	"studyplan/internal/service"
	"studyplan/internal/storage"
)

// FakeStorage is an in-memory implementation of storage.Storage for testing.
type FakeStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
	sets   int
	closed bool

	// Error injection for testing
	GetErr   error
	SetErr   error
	CloseErr error
}

// NewFakeStorage creates an empty FakeStorage.
func NewFakeStorage() *FakeStorage {
	return &FakeStorage{values: make(map[string][]byte)}
}

// Put seeds a raw value, bypassing error injection.
func (f *FakeStorage) Put(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = append([]byte(nil), value...)
}

// Value returns the raw value stored under key.
func (f *FakeStorage) Value(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// Sets returns how many successful Set calls were made.
func (f *FakeStorage) Sets() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.sets
}

// Closed reports whether Close was called.
func (f *FakeStorage) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements storage.Storage.
func (f *FakeStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements storage.Storage.
func (f *FakeStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = append([]byte(nil), value...)
	f.sets++
	return nil
}

// Close implements storage.Storage.
func (f *FakeStorage) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}

// Now is the fixed clock used by NewStore.
var Now = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

// SequentialIDs returns an id generator yielding t1, t2, ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

// NewStore opens a planner.Store over st with a fixed clock and sequential ids.
func NewStore(t *testing.T, st *FakeStorage) *planner.Store {
	t.Helper()
	s, err := planner.Open(context.Background(), st,
		planner.WithClock(func() time.Time { return Now }),
		planner.WithIDGenerator(SequentialIDs()))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

// Seed adds tasks to s, failing the test on error. Tasks marked completed
// are toggled after being added.
func Seed(t *testing.T, s *planner.Store, tasks ...service.Task) []service.Task {
	t.Helper()
	ctx := context.Background()
	var added []service.Task
	for _, task := range tasks {
		got, err := s.Add(ctx, service.Draft{
			Title:       task.Title,
			DueDate:     task.DueDate,
			Priority:    task.Priority,
			Category:    task.Category,
			Description: task.Description,
		})
		if err != nil {
			t.Fatalf("failed to add %q: %v", task.Title, err)
		}
		if task.Completed {
			if _, err := s.ToggleCompleted(ctx, got.ID); err != nil {
				t.Fatalf("failed to complete %q: %v", task.Title, err)
			}
			got.Completed = true
		}
		added = append(added, got)
	}
	return added
}

// MustDate parses a YYYY-MM-DD date or panics.
func MustDate(s string) service.Date {
	d, err := service.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
