package repository

import (
	"context"

	"github.com/focusdo/backend/domain"
)

// SubTaskRepository resolves ownership through the parent task on every
// scoped operation.
type SubTaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.SubTask, error)
	ListByTask(ctx context.Context, taskID string) ([]domain.SubTask, error)
	GetByID(ctx context.Context, userID, id string) (*domain.SubTask, error)
	Create(ctx context.Context, subtask *domain.SubTask) (*domain.SubTask, error)
	Update(ctx context.Context, userID string, subtask *domain.SubTask) error
	Delete(ctx context.Context, userID, id string) error
}
