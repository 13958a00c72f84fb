package task

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
	return New(store.Tasks(), store.SubTasks(), nil), store
}

func TestCreateDefaults(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "Write spec", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "user-a", created.UserID)
	require.False(t, created.Completed)
	require.Nil(t, created.CompletedAt)
	require.NotNil(t, created.SubTasks)
	require.Empty(t, created.SubTasks)
	require.False(t, created.CreatedAt.IsZero())
}

func TestCreateDefaultsPriorityToLow(t *testing.T) {
	uc, _ := newUseCase()

	created, err := uc.Create(context.Background(), "user-a", &domain.Task{Title: "chore"})
	require.NoError(t, err)
	require.Equal(t, domain.PriorityLow, created.Priority)
}

func TestCreateCompletedDerivesTimestamp(t *testing.T) {
	uc, _ := newUseCase()
	before := time.Now()

	created, err := uc.Create(context.Background(), "user-a", &domain.Task{Title: "done already", Completed: true})
	require.NoError(t, err)
	require.NotNil(t, created.CompletedAt)
	require.False(t, created.CompletedAt.Before(before))
	require.False(t, created.CompletedAt.After(time.Now()))
}

func TestCreateRequiresTitle(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Create(context.Background(), "user-a", &domain.Task{})
	var dErr *domain.Error
	require.ErrorAs(t, err, &dErr)
	require.Contains(t, dErr.Fields, "title")
}

func TestUpdateCompletionRoundTrip(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "Write spec", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.Nil(t, created.CompletedAt)

	completed := true
	before := time.Now()
	updated, err := uc.Update(ctx, "user-a", created.ID, Patch{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	require.False(t, updated.CompletedAt.Before(before))

	firstCompletedAt := *updated.CompletedAt

	// A second completed=true update keeps the original timestamp.
	updated, err = uc.Update(ctx, "user-a", created.ID, Patch{Completed: &completed})
	require.NoError(t, err)
	require.Equal(t, firstCompletedAt, *updated.CompletedAt)

	completed = false
	updated, err = uc.Update(ctx, "user-a", created.ID, Patch{Completed: &completed})
	require.NoError(t, err)
	require.False(t, updated.Completed)
	require.Nil(t, updated.CompletedAt)
}

func TestUpdatePartialFields(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "Write spec", Description: "v1"})
	require.NoError(t, err)

	title := "Write the spec"
	updated, err := uc.Update(ctx, "user-a", created.ID, Patch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Write the spec", updated.Title)
	require.Equal(t, "v1", updated.Description)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestOwnershipScoping(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "private"})
	require.NoError(t, err)

	// Another caller sees not-found everywhere, never a permission error.
	_, err = uc.Get(ctx, "user-b", created.ID)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	completed := true
	_, err = uc.Update(ctx, "user-b", created.ID, Patch{Completed: &completed})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	err = uc.Delete(ctx, "user-b", created.ID)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	tasks, err := uc.List(ctx, "user-b")
	require.NoError(t, err)
	require.Empty(t, tasks)

	// The owner still sees the untouched task.
	got, err := uc.Get(ctx, "user-a", created.ID)
	require.NoError(t, err)
	require.False(t, got.Completed)
}

func TestListEmbedsSubTasks(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "parent"})
	require.NoError(t, err)

	_, err = store.SubTasks().Create(ctx, &domain.SubTask{Title: "step1", TaskID: created.ID})
	require.NoError(t, err)

	tasks, err := uc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Len(t, tasks[0].SubTasks, 1)
	require.Equal(t, "step1", tasks[0].SubTasks[0].Title)
}

func TestDeleteCascadesToSubTasks(t *testing.T) {
	uc, store := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, "user-a", &domain.Task{Title: "parent"})
	require.NoError(t, err)
	_, err = store.SubTasks().Create(ctx, &domain.SubTask{Title: "step1", TaskID: created.ID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "user-a", created.ID))

	subtasks, err := store.SubTasks().ListByTask(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, subtasks)
}
