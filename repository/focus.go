package repository

import (
	"context"

	"github.com/focusdo/backend/domain"
)

type FocusSessionRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.FocusSession, error)
	Create(ctx context.Context, session *domain.FocusSession) (*domain.FocusSession, error)
}
