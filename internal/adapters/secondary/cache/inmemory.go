package cache

import (
	"sync"
	"time"

	"github.com/FrancisEgan/TodoApp/internal/core/domain"
)

// DefaultTTL is the sliding expiry window used when none is configured.
// Task lists are low-churn, so a multi-hour window is fine.
const DefaultTTL = 2 * time.Hour

type entry struct {
	tasks   []domain.Task
	expires time.Time
}

// InMemoryTaskCache is a thread-safe in-memory TaskCache with sliding
// expiry. Every successful access to an entry, read or write, resets its
// deadline; an expired entry reads as a miss and is dropped on access.
type InMemoryTaskCache struct {
	mu      sync.Mutex
	entries map[int64]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryTaskCache creates a new in-memory task cache. A ttl <= 0 falls
// back to DefaultTTL.
func NewInMemoryTaskCache(ttl time.Duration) *InMemoryTaskCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &InMemoryTaskCache{
		entries: make(map[int64]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

var _ TaskCache = (*InMemoryTaskCache)(nil)

// Get returns a copy of the cached task list for the user and true on a hit.
func (c *InMemoryTaskCache) Get(userID int64) ([]domain.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(userID)
	if !ok {
		return nil, false
	}

	e.expires = c.now().Add(c.ttl)

	tasks := make([]domain.Task, len(e.tasks))
	copy(tasks, e.tasks)

	return tasks, true
}

// Set replaces (or creates) the entry for the user.
func (c *InMemoryTaskCache) Set(userID int64, tasks []domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	owned := make([]domain.Task, len(tasks))
	copy(owned, tasks)

	c.entries[userID] = &entry{
		tasks:   owned,
		expires: c.now().Add(c.ttl),
	}
}

// AddTask appends a task to the user's entry, if one exists.
func (c *InMemoryTaskCache) AddTask(userID int64, task domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(userID)
	if !ok {
		return
	}

	e.tasks = append(e.tasks, task)
	e.expires = c.now().Add(c.ttl)
}

// UpdateTask replaces the task with the same ID in the user's entry.
func (c *InMemoryTaskCache) UpdateTask(userID int64, task domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(userID)
	if !ok {
		return
	}

	for i := range e.tasks {
		if e.tasks[i].ID == task.ID {
			e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
			e.tasks = append(e.tasks, task)
			e.expires = c.now().Add(c.ttl)

			return
		}
	}
}

// RemoveTask removes the task with the given ID from the user's entry.
func (c *InMemoryTaskCache) RemoveTask(userID, taskID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(userID)
	if !ok {
		return
	}

	for i := range e.tasks {
		if e.tasks[i].ID == taskID {
			e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
			e.expires = c.now().Add(c.ttl)

			return
		}
	}
}

// Invalidate removes the user's entry regardless of whether one exists.
func (c *InMemoryTaskCache) Invalidate(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
}

// live returns the user's entry if present and not expired. An expired
// entry is dropped. Callers must hold c.mu.
func (c *InMemoryTaskCache) live(userID int64) (*entry, bool) {
	e, ok := c.entries[userID]
	if !ok {
		return nil, false
	}
	if e.expires.Before(c.now()) {
		delete(c.entries, userID)

		return nil, false
	}

	return e, true
}
