package subtask

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository/memory"
)

func newUseCase() (*UseCase, *memory.Store) {
	store := memory.NewStore()
	return New(store.SubTasks(), store.Tasks(), nil), store
}

func createTask(t *testing.T, store *memory.Store, userID, title string) *domain.Task {
	t.Helper()
	task, err := store.Tasks().Create(context.Background(), &domain.Task{
		UserID:   userID,
		Title:    title,
		Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	return task
}

func TestCreateUnderOwnTask(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	parent := createTask(t, store, "user-a", "parent")

	created, err := uc.Create(ctx, "user-a", &domain.SubTask{Title: "step1", TaskID: parent.ID})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, parent.ID, created.TaskID)
	require.False(t, created.Completed)
	require.Nil(t, created.CompletedAt)
}

func TestCreateUnderForeignTaskIsNotFound(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	parent := createTask(t, store, "user-a", "parent")

	_, err := uc.Create(ctx, "user-b", &domain.SubTask{Title: "step1", TaskID: parent.ID})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	_, err = uc.Create(ctx, "user-b", &domain.SubTask{Title: "step1", TaskID: "missing"})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestCompletionDerivation(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	parent := createTask(t, store, "user-a", "parent")

	created, err := uc.Create(ctx, "user-a", &domain.SubTask{Title: "step1", TaskID: parent.ID})
	require.NoError(t, err)

	completed := true
	before := time.Now()
	updated, err := uc.Update(ctx, "user-a", created.ID, Patch{Completed: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	require.False(t, updated.CompletedAt.Before(before))

	completed = false
	updated, err = uc.Update(ctx, "user-a", created.ID, Patch{Completed: &completed})
	require.NoError(t, err)
	require.Nil(t, updated.CompletedAt)
}

func TestScopingThroughParentOwner(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()
	parent := createTask(t, store, "user-a", "parent")

	created, err := uc.Create(ctx, "user-a", &domain.SubTask{Title: "step1", TaskID: parent.ID})
	require.NoError(t, err)

	_, err = uc.Get(ctx, "user-b", created.ID)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	completed := true
	_, err = uc.Update(ctx, "user-b", created.ID, Patch{Completed: &completed})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	err = uc.Delete(ctx, "user-b", created.ID)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	subtasks, err := uc.List(ctx, "user-b")
	require.NoError(t, err)
	require.Empty(t, subtasks)

	subtasks, err = uc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, subtasks, 1)
}

func TestListCoversAllOwnedTasks(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	first := createTask(t, store, "user-a", "first")
	second := createTask(t, store, "user-a", "second")

	_, err := uc.Create(ctx, "user-a", &domain.SubTask{Title: "a", TaskID: first.ID})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "user-a", &domain.SubTask{Title: "b", TaskID: second.ID})
	require.NoError(t, err)

	subtasks, err := uc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, subtasks, 2)
}
