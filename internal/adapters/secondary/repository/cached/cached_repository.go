package cached

import (
	"context"
	"errors"
	"fmt"

	"github.com/FrancisEgan/TodoApp/internal/adapters/secondary/cache"
	"github.com/FrancisEgan/TodoApp/internal/core/app"
	"github.com/FrancisEgan/TodoApp/internal/core/domain"
)

// Repository wraps a Repository with per-user task list caching.
//
// Reads are read-through: a list miss queries the store and populates the
// cache. Writes go to the store first and patch the cache afterwards; the
// patch is a no-op when the user's list is not cached. The cache is a pure
// optimization — every path falls back to the store.
type Repository struct {
	repo  app.Repository
	cache cache.TaskCache
}

// NewRepository creates a new cached repository instance.
func NewRepository(repo app.Repository, taskCache cache.TaskCache) *Repository {
	return &Repository{
		repo:  repo,
		cache: taskCache,
	}
}

var _ app.Repository = (*Repository)(nil)

// ListTasks returns the user's active tasks, served from cache on a hit.
// On a miss the store result becomes the user's cache entry.
func (r *Repository) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	if tasks, ok := r.cache.Get(userID); ok {
		return tasks, nil
	}

	tasks, err := r.repo.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	r.cache.Set(userID, tasks)

	return tasks, nil
}

// GetTask returns a single task, resolved from the cached list when
// possible. A task missing from a cached list falls back to the store and,
// when found there, is added to the cached list.
func (r *Repository) GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	cachedTasks, listCached := r.cache.Get(userID)
	if listCached {
		for i := range cachedTasks {
			if cachedTasks[i].ID == taskID {
				return &cachedTasks[i], nil
			}
		}
	}

	task, err := r.repo.GetTask(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if listCached {
		r.cache.AddTask(userID, *task)
	}

	return task, nil
}

// CreateTask inserts the task into the store, then appends it to the
// user's cached list if one exists.
func (r *Repository) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	created, err := r.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	r.cache.AddTask(created.CreatedBy, *created)

	return created, nil
}

// UpdateTask updates the task in the store, then patches the user's cached
// list if one exists.
func (r *Repository) UpdateTask(ctx context.Context, task *domain.Task) error {
	if err := r.repo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to update task: %w", err)
	}

	r.cache.UpdateTask(task.CreatedBy, *task)

	return nil
}

// DeleteTask soft-deletes the task in the store, then removes it from the
// user's cached list if one exists. The cache holds only active items, so
// removal (not a delete flag) is the correct patch.
func (r *Repository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if err := r.repo.DeleteTask(ctx, userID, taskID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to delete task: %w", err)
	}

	r.cache.RemoveTask(userID, taskID)

	return nil
}

// CreateUser passes through to the store.
func (r *Repository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return r.repo.CreateUser(ctx, user)
}

// UserByEmail passes through to the store.
func (r *Repository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.repo.UserByEmail(ctx, email)
}

// UserByVerificationToken passes through to the store.
func (r *Repository) UserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.repo.UserByVerificationToken(ctx, token)
}

// UpdateUser passes through to the store.
func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	return r.repo.UpdateUser(ctx, user)
}
