package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/focusdo/backend/domain"
)

type subTaskStore struct {
	store *Store
}

func (r *subTaskStore) ListByOwner(_ context.Context, userID string) ([]domain.SubTask, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var subtasks []domain.SubTask
	for _, subtask := range r.store.subtasks {
		if parent, ok := r.store.tasks[subtask.TaskID]; ok && parent.UserID == userID {
			subtasks = append(subtasks, subtask)
		}
	}
	sortSubTasks(subtasks)
	return subtasks, nil
}

func (r *subTaskStore) ListByTask(_ context.Context, taskID string) ([]domain.SubTask, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var subtasks []domain.SubTask
	for _, subtask := range r.store.subtasks {
		if subtask.TaskID == taskID {
			subtasks = append(subtasks, subtask)
		}
	}
	sortSubTasks(subtasks)
	return subtasks, nil
}

func (r *subTaskStore) GetByID(_ context.Context, userID, id string) (*domain.SubTask, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	subtask, ok := r.ownedLocked(userID, id)
	if !ok {
		return nil, domain.ErrSubTaskNotFound
	}
	return &subtask, nil
}

func (r *subTaskStore) Create(_ context.Context, subtask *domain.SubTask) (*domain.SubTask, error) {
	if subtask == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if subtask.ID == "" {
		subtask.ID = uuid.NewString()
	}
	r.store.subtasks[subtask.ID] = *subtask
	return subtask, nil
}

func (r *subTaskStore) Update(_ context.Context, userID string, subtask *domain.SubTask) error {
	if subtask == nil {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.ownedLocked(userID, subtask.ID)
	if !ok {
		return domain.ErrSubTaskNotFound
	}
	subtask.TaskID = existing.TaskID
	r.store.subtasks[subtask.ID] = *subtask
	return nil
}

func (r *subTaskStore) Delete(_ context.Context, userID, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.ownedLocked(userID, id); !ok {
		return domain.ErrSubTaskNotFound
	}
	delete(r.store.subtasks, id)
	return nil
}

func (r *subTaskStore) ownedLocked(userID, id string) (domain.SubTask, bool) {
	subtask, ok := r.store.subtasks[id]
	if !ok {
		return domain.SubTask{}, false
	}
	parent, ok := r.store.tasks[subtask.TaskID]
	if !ok || parent.UserID != userID {
		return domain.SubTask{}, false
	}
	return subtask, true
}

func sortSubTasks(subtasks []domain.SubTask) {
	sort.Slice(subtasks, func(i, j int) bool {
		return subtasks[i].ID < subtasks[j].ID
	})
}
