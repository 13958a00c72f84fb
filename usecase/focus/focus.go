package focus

import (
	"context"

	"go.uber.org/zap"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

type UseCase struct {
	sessions repository.FocusSessionRepository
	logger   *zap.Logger
}

func New(sessions repository.FocusSessionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *UseCase) List(ctx context.Context, userID string) ([]domain.FocusSession, error) {
	sessions, err := uc.sessions.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []domain.FocusSession{}
	}
	return sessions, nil
}

// Create logs a focus session for the caller. No caller input is
// accepted; owner and timestamp are both server-assigned.
func (uc *UseCase) Create(ctx context.Context, userID string) (*domain.FocusSession, error) {
	session := &domain.FocusSession{UserID: userID}
	created, err := uc.sessions.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("focus session logged", zap.String("user_id", userID))
	return created, nil
}
