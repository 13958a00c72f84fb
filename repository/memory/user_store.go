package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/focusdo/backend/domain"
)

type userStore struct {
	store *Store
}

func (r *userStore) Create(_ context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.usernames[user.Username]; taken {
		return domain.ErrUsernameTaken()
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.store.users[user.ID] = *user
	r.store.usernames[user.Username] = user.ID
	return nil
}

func (r *userStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.usernames[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := r.store.users[id]
	return &user, nil
}

func (r *userStore) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	delete(r.store.users, id)
	delete(r.store.usernames, user.Username)
	for taskID, task := range r.store.tasks {
		if task.UserID == id {
			r.store.deleteTaskLocked(taskID)
		}
	}
	for sessionID, session := range r.store.focus {
		if session.UserID == id {
			delete(r.store.focus, sessionID)
		}
	}
	return nil
}
