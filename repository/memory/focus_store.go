package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/focusdo/backend/domain"
)

type focusStore struct {
	store *Store
}

func (r *focusStore) ListByOwner(_ context.Context, userID string) ([]domain.FocusSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var sessions []domain.FocusSession
	for _, session := range r.store.focus {
		if session.UserID == userID {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

func (r *focusStore) Create(_ context.Context, session *domain.FocusSession) (*domain.FocusSession, error) {
	if session == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if session.Timestamp.IsZero() {
		session.Timestamp = time.Now()
	}
	r.store.focus[session.ID] = *session
	return session, nil
}
