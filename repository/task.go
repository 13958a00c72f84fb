package repository

import (
	"context"

	"github.com/focusdo/backend/domain"
)

// TaskRepository scopes every query by the owning user so an unowned row
// behaves exactly like a missing one.
type TaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.Task, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
}
