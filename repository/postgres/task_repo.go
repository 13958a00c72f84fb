package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, description, due_date, priority, completed, created_at, completed_at
	FROM tasks
	WHERE user_id = $1
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	const query = `
	SELECT id, user_id, title, description, due_date, priority, completed, created_at, completed_at
	FROM tasks
	WHERE id = $1 AND user_id = $2
	`
	return scanTask(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks (id, user_id, title, description, due_date, priority, completed, completed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		dueDateArg(task.DueDate),
		task.Priority,
		task.Completed,
		task.CompletedAt,
	).Scan(&task.CreatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		description = $4,
		due_date = $5,
		priority = $6,
		completed = $7,
		completed_at = $8
	WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		dueDateArg(task.DueDate),
		task.Priority,
		task.Completed,
		task.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task; its subtasks go with it via the schema cascade.
func (r *taskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	var due pgtypeDate

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&due,
		&task.Priority,
		&task.Completed,
		&task.CreatedAt,
		&task.CompletedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.DueDate = due.toDomain()
	return &task, nil
}
