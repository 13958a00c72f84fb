// Package memory provides map-backed implementations of the repository
// interfaces with the same ownership scoping and cascade rules the
// Postgres schema enforces. It backs the usecase and handler tests.
package memory

import (
	"sync"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

type Store struct {
	mu        sync.RWMutex
	users     map[string]domain.User
	usernames map[string]string
	tasks     map[string]domain.Task
	subtasks  map[string]domain.SubTask
	focus     map[string]domain.FocusSession
	sessions  map[string]domain.Session
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		usernames: make(map[string]string),
		tasks:     make(map[string]domain.Task),
		subtasks:  make(map[string]domain.SubTask),
		focus:     make(map[string]domain.FocusSession),
		sessions:  make(map[string]domain.Session),
	}
}

func (s *Store) Users() repository.UserRepository {
	return &userStore{store: s}
}

func (s *Store) Tasks() repository.TaskRepository {
	return &taskStore{store: s}
}

func (s *Store) SubTasks() repository.SubTaskRepository {
	return &subTaskStore{store: s}
}

func (s *Store) FocusSessions() repository.FocusSessionRepository {
	return &focusStore{store: s}
}

func (s *Store) Sessions() repository.SessionRepository {
	return &sessionStore{store: s}
}

// deleteTaskLocked removes a task and cascades to its subtasks.
// Caller must hold the write lock.
func (s *Store) deleteTaskLocked(taskID string) {
	delete(s.tasks, taskID)
	for id, subtask := range s.subtasks {
		if subtask.TaskID == taskID {
			delete(s.subtasks, id)
		}
	}
}
