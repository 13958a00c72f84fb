package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

// Patch describes a partial task update. Nil fields are left untouched.
// created_at and completed_at are deliberately absent: both are derived
// server-side and never accepted from the caller.
type Patch struct {
	Title       *string
	Description *string
	DueDate     *domain.Date
	Priority    *domain.Priority
	Completed   *bool
}

type UseCase struct {
	tasks    repository.TaskRepository
	subtasks repository.SubTaskRepository
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, subtasks repository.SubTaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		subtasks: subtasks,
		logger:   logger,
	}
}

// List returns the caller's tasks with their subtasks embedded.
func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := uc.tasks.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if err := uc.attachSubTasks(ctx, &tasks[i]); err != nil {
			return nil, err
		}
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.attachSubTasks(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Create persists a new task for the caller. The owner is forced to the
// caller and completion timestamps are derived before the write.
func (uc *UseCase) Create(ctx context.Context, userID string, task *domain.Task) (*domain.Task, error) {
	task.ID = ""
	task.UserID = userID
	if task.Priority == "" {
		task.Priority = domain.PriorityLow
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	task.CompletedAt = nil
	task.SyncCompletion(time.Now())

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	created.SubTasks = []domain.SubTask{}

	uc.logger.Info("task created", zap.String("task_id", created.ID), zap.String("user_id", userID))
	return created, nil
}

// Update applies a partial update within the caller's ownership scope
// and re-derives the completion timestamp from the stored row.
func (uc *UseCase) Update(ctx context.Context, userID, id string, patch Patch) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}
	task.SyncCompletion(time.Now())

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	if err := uc.attachSubTasks(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and, through the storage cascade, its subtasks.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.tasks.Delete(ctx, userID, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.String("task_id", id), zap.String("user_id", userID))
	return nil
}

func (uc *UseCase) attachSubTasks(ctx context.Context, task *domain.Task) error {
	subtasks, err := uc.subtasks.ListByTask(ctx, task.ID)
	if err != nil {
		return err
	}
	if subtasks == nil {
		subtasks = []domain.SubTask{}
	}
	task.SubTasks = subtasks
	return nil
}
