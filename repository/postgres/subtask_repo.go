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

type subTaskRepository struct {
	pool *pgxpool.Pool
}

// NewSubTaskRepository returns a Postgres-backed implementation of SubTaskRepository.
// All owner-scoped queries join through the parent task.
func NewSubTaskRepository(pool *pgxpool.Pool) repository.SubTaskRepository {
	return &subTaskRepository{pool: pool}
}

func (r *subTaskRepository) ListByOwner(ctx context.Context, userID string) ([]domain.SubTask, error) {
	const query = `
	SELECT s.id, s.title, s.completed, s.task_id, s.completed_at
	FROM subtasks s
	JOIN tasks t ON t.id = s.task_id
	WHERE t.user_id = $1
	ORDER BY s.id
	`
	return r.queryMany(ctx, query, userID)
}

func (r *subTaskRepository) ListByTask(ctx context.Context, taskID string) ([]domain.SubTask, error) {
	const query = `
	SELECT id, title, completed, task_id, completed_at
	FROM subtasks
	WHERE task_id = $1
	ORDER BY id
	`
	return r.queryMany(ctx, query, taskID)
}

func (r *subTaskRepository) GetByID(ctx context.Context, userID, id string) (*domain.SubTask, error) {
	const query = `
	SELECT s.id, s.title, s.completed, s.task_id, s.completed_at
	FROM subtasks s
	JOIN tasks t ON t.id = s.task_id
	WHERE s.id = $1 AND t.user_id = $2
	`
	return scanSubTask(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *subTaskRepository) Create(ctx context.Context, subtask *domain.SubTask) (*domain.SubTask, error) {
	if subtask == nil {
		return nil, domain.ErrInvalidPayload
	}
	if subtask.ID == "" {
		subtask.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO subtasks (id, task_id, title, completed, completed_at)
	VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query,
		subtask.ID,
		subtask.TaskID,
		subtask.Title,
		subtask.Completed,
		subtask.CompletedAt,
	); err != nil {
		return nil, err
	}
	return subtask, nil
}

func (r *subTaskRepository) Update(ctx context.Context, userID string, subtask *domain.SubTask) error {
	if subtask == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE subtasks s
	SET title = $3,
		completed = $4,
		completed_at = $5
	FROM tasks t
	WHERE s.id = $1 AND s.task_id = t.id AND t.user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query,
		subtask.ID,
		userID,
		subtask.Title,
		subtask.Completed,
		subtask.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubTaskNotFound
	}
	return nil
}

func (r *subTaskRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `
	DELETE FROM subtasks s
	USING tasks t
	WHERE s.id = $1 AND s.task_id = t.id AND t.user_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSubTaskNotFound
	}
	return nil
}

func (r *subTaskRepository) queryMany(ctx context.Context, query string, arg string) ([]domain.SubTask, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []domain.SubTask
	for rows.Next() {
		subtask, err := scanSubTask(rows)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, *subtask)
	}
	return subtasks, rows.Err()
}

func scanSubTask(row pgx.Row) (*domain.SubTask, error) {
	var subtask domain.SubTask
	if err := row.Scan(
		&subtask.ID,
		&subtask.Title,
		&subtask.Completed,
		&subtask.TaskID,
		&subtask.CompletedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubTaskNotFound
		}
		return nil, err
	}
	return &subtask, nil
}
