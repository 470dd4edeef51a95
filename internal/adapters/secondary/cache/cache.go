package cache

import "github.com/FrancisEgan/TodoApp/internal/core/domain"

// TaskCache defines the interface for caching a user's active task list.
//
// An entry is the authoritative list of a user's non-deleted tasks once
// populated by Set. Absence of an entry means "unknown, consult the store";
// a present entry may be served directly, even when empty. The mutators
// patch an existing entry after a successful store write and never create
// one — a write against an uncached user is a silent no-op.
type TaskCache interface {
	// Get returns a copy of the cached task list for the user and true on a
	// hit. It returns nil and false when the user has no live entry.
	Get(userID int64) ([]domain.Task, bool)

	// Set replaces (or creates) the entry for the user with exactly the
	// given tasks. This is the only operation that creates an entry.
	Set(userID int64, tasks []domain.Task)

	// AddTask appends a task to the user's entry, if one exists.
	AddTask(userID int64, task domain.Task)

	// UpdateTask replaces the task with the same ID in the user's entry,
	// if both the entry and the task exist. Position is not preserved.
	UpdateTask(userID int64, task domain.Task)

	// RemoveTask removes the task with the given ID from the user's entry,
	// if both the entry and the task exist.
	RemoveTask(userID, taskID int64)

	// Invalidate removes the user's entry regardless of whether one exists.
	Invalidate(userID int64)
}
