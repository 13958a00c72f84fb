package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/focusdo/backend/domain"
)

type taskStore struct {
	store *Store
}

func (r *taskStore) ListByOwner(_ context.Context, userID string) ([]domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range r.store.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *taskStore) GetByID(_ context.Context, userID, id string) (*domain.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return &task, nil
}

func (r *taskStore) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	r.store.tasks[task.ID] = *task
	return task, nil
}

func (r *taskStore) Update(_ context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return domain.ErrTaskNotFound
	}
	task.CreatedAt = existing.CreatedAt
	r.store.tasks[task.ID] = *task
	return nil
}

func (r *taskStore) Delete(_ context.Context, userID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[id]
	if !ok || task.UserID != userID {
		return domain.ErrTaskNotFound
	}
	r.store.deleteTaskLocked(id)
	return nil
}
