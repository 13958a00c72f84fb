package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/focusdo/backend/domain"
)

func TestUserDeleteCascades(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, user))

	task, err := store.Tasks().Create(ctx, &domain.Task{UserID: user.ID, Title: "t", Priority: domain.PriorityLow})
	require.NoError(t, err)
	_, err = store.SubTasks().Create(ctx, &domain.SubTask{Title: "s", TaskID: task.ID})
	require.NoError(t, err)
	_, err = store.FocusSessions().Create(ctx, &domain.FocusSession{UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, store.Users().Delete(ctx, user.ID))

	_, err = store.Users().GetByID(ctx, user.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	tasks, err := store.Tasks().ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)

	subtasks, err := store.SubTasks().ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Empty(t, subtasks)

	sessions, err := store.FocusSessions().ListByOwner(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, sessions)
}

func TestUsernameFreedAfterDelete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := &domain.User{Username: "alice", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, first))
	require.NoError(t, store.Users().Delete(ctx, first.ID))

	second := &domain.User{Username: "alice", PasswordHash: "y"}
	require.NoError(t, store.Users().Create(ctx, second))
	require.NotEqual(t, first.ID, second.ID)
}
