package memory

import (
	"context"
	"time"

	"github.com/focusdo/backend/domain"
)

type sessionStore struct {
	store *Store
}

func (r *sessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok || session.IsExpired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *sessionStore) Save(_ context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	r.store.sessions[session.ID] = *session
	return nil
}

func (r *sessionStore) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, id)
	return nil
}
