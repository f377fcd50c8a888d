// Package planner implements the study task store: the in-memory task
// collection, its persistence, and the views derived from it.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studyplan/internal/service"
	"studyplan/internal/storage"
)

// StorageKey is the slot that holds the serialized collection.
const StorageKey = "studyPlannerTasks"

// BackupSuffix is appended to the storage key to keep an unreadable
// document before the first save replaces it.
const BackupSuffix = ".bak"

// Store owns the task collection. It is not safe for concurrent use.
type Store struct {
	st    storage.Storage
	key   string
	tasks []service.Task // insertion order

	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

var _ service.Service = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides task id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// Open loads the collection from st. A missing or unparsable document
// yields an empty collection; only storage failures are returned.
func Open(ctx context.Context, st storage.Storage, opts ...Option) (*Store, error) {
	s := &Store{
		st:    st,
		key:   StorageKey,
		now:   time.Now,
		newID: newUUID,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := st.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.log.Debug("no saved tasks", zap.String("key", s.key))
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn("saved tasks unreadable, starting empty",
			zap.String("key", s.key), zap.Int("bytes", len(data)), zap.Error(err))
		if err := s.backup(ctx, data); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.tasks = tasks
	s.log.Debug("loaded tasks", zap.Int("count", len(tasks)))
	return s, nil
}

// backup copies an unreadable document aside so the next save cannot
// destroy it.
func (s *Store) backup(ctx context.Context, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	key := s.key + BackupSuffix
	if err := s.st.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to back up unreadable tasks: %w", err)
	}
	s.log.Warn("unreadable tasks backed up", zap.String("key", key))
	return nil
}

// Add implements service.Service. Unset or unknown priorities become medium.
func (s *Store) Add(ctx context.Context, d service.Draft) (service.Task, error) {
	d.Priority = normalizePriority(d.Priority)
	task := service.Task{
		ID:          s.uniqueID(),
		Title:       d.Title,
		DueDate:     d.DueDate,
		Priority:    d.Priority,
		Category:    d.Category,
		Description: d.Description,
		Completed:   false,
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}
	s.tasks = append(s.tasks, task)
	if err := s.Flush(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// Update implements service.Service. An unknown priority in p becomes medium.
func (s *Store) Update(ctx context.Context, id string, p service.Patch) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	if p.Priority != nil {
		priority := normalizePriority(*p.Priority)
		p.Priority = &priority
	}
	s.tasks[i] = p.Apply(s.tasks[i])
	return true, s.Flush(ctx)
}

// Delete implements service.Service.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true, s.Flush(ctx)
}

// ToggleCompleted implements service.Service.
func (s *Store) ToggleCompleted(ctx context.Context, id string) (bool, error) {
	i := s.index(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true, s.Flush(ctx)
}

// FindByID implements service.Service.
func (s *Store) FindByID(id string) (service.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return service.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks implements service.Service.
func (s *Store) Tasks() []service.Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Flush writes the full collection to storage.
func (s *Store) Flush(ctx context.Context) error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := s.st.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	s.log.Debug("saved tasks", zap.Int("count", len(s.tasks)), zap.Int("bytes", len(data)))
	return nil
}

// Close implements service.Service.
func (s *Store) Close() error {
	return s.st.Close()
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
}

// uniqueID draws ids until one is not in use.
func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if s.index(id) < 0 {
			return id
		}
	}
}

// normalizePriority keeps values that cannot be encoded out of the collection.
func normalizePriority(p service.Priority) service.Priority {
	if !p.Valid() {
		return service.PriorityMedium
	}
	return p
}

// newUUID returns a time-ordered UUIDv7 string.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
