package subtask

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

// Patch describes a partial subtask update. The parent task reference is
// immutable after creation and therefore not patchable.
type Patch struct {
	Title     *string
	Completed *bool
}

type UseCase struct {
	subtasks repository.SubTaskRepository
	tasks    repository.TaskRepository
	logger   *zap.Logger
}

func New(subtasks repository.SubTaskRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		subtasks: subtasks,
		tasks:    tasks,
		logger:   logger,
	}
}

// List returns every subtask whose parent task belongs to the caller.
func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.SubTask, error) {
	subtasks, err := uc.subtasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if subtasks == nil {
		subtasks = []domain.SubTask{}
	}
	return subtasks, nil
}

func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.SubTask, error) {
	return uc.subtasks.GetByID(ctx, userID, id)
}

// Create persists a subtask under a task the caller owns. A parent task
// that is missing or owned by someone else surfaces as not-found.
func (uc *UseCase) Create(ctx context.Context, userID string, subtask *domain.SubTask) (*domain.SubTask, error) {
	subtask.ID = ""
	if err := subtask.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.tasks.GetByID(ctx, userID, subtask.TaskID); err != nil {
		return nil, err
	}

	subtask.CompletedAt = nil
	subtask.SyncCompletion(time.Now())

	created, err := uc.subtasks.Create(ctx, subtask)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("subtask created", zap.String("subtask_id", created.ID), zap.String("task_id", created.TaskID))
	return created, nil
}

// Update applies a partial update scoped through the parent task's owner.
func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.SubTask, error) {
	subtask, err := uc.subtasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		subtask.Title = *patch.Title
	}
	if patch.Completed != nil {
		subtask.Completed = *patch.Completed
	}

	if err := subtask.Validate(); err != nil {
		return nil, err
	}
	subtask.SyncCompletion(time.Now())

	if err := uc.subtasks.Update(ctx, userID, subtask); err != nil {
		return nil, err
	}
	return subtask, nil
}

func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	return uc.subtasks.Delete(ctx, userID, id)
}
