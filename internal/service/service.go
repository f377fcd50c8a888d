// Package service defines the task store interface consumed by commands
// together with the planner's domain types.
package service

import "context"

// Service defines the operations the CLI performs against the task store.
// Commands never touch storage backends directly.
type Service interface {
	// Add creates a task from d and persists the collection.
	Add(ctx context.Context, d Draft) (Task, error)

	// Update applies p to the task with the given id.
	// Returns false if no such task exists; nothing is persisted then.
	Update(ctx context.Context, id string, p Patch) (bool, error)

	// Delete removes the task with the given id.
	// Callers are responsible for confirming the intent first.
	Delete(ctx context.Context, id string) (bool, error)

	// ToggleCompleted flips the completed flag of a task.
	ToggleCompleted(ctx context.Context, id string) (bool, error)

	// FindByID looks up a single task.
	FindByID(id string) (Task, bool)

	// Tasks returns the collection in insertion order.
	Tasks() []Task

	// SortedForDisplay returns open tasks before completed ones, each group
	// ordered by due date. Equal keys keep insertion order.
	SortedForDisplay() []Task

	// TasksOnDate returns tasks due exactly on d, in insertion order.
	TasksOnDate(d Date) []Task

	// ProgressSummary returns completion counts for the whole collection.
	ProgressSummary() Progress

	// Close releases the underlying storage.
	Close() error
}
