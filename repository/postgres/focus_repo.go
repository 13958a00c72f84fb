package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

type focusSessionRepository struct {
	pool *pgxpool.Pool
}

// NewFocusSessionRepository returns a Postgres-backed implementation of
// FocusSessionRepository. Focus sessions are insert-only.
func NewFocusSessionRepository(pool *pgxpool.Pool) repository.FocusSessionRepository {
	return &focusSessionRepository{pool: pool}
}

func (r *focusSessionRepository) ListByOwner(ctx context.Context, userID string) ([]domain.FocusSession, error) {
	const query = `
	SELECT id, user_id, logged_at
	FROM focus_sessions
	WHERE user_id = $1
	ORDER BY logged_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.FocusSession
	for rows.Next() {
		var session domain.FocusSession
		if err := rows.Scan(&session.ID, &session.UserID, &session.Timestamp); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (r *focusSessionRepository) Create(ctx context.Context, session *domain.FocusSession) (*domain.FocusSession, error) {
	if session == nil {
		return nil, domain.ErrInvalidPayload
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO focus_sessions (id, user_id)
	VALUES ($1, $2)
	RETURNING logged_at
	`
	if err := r.pool.QueryRow(ctx, query, session.ID, session.UserID).Scan(&session.Timestamp); err != nil {
		return nil, err
	}
	return session, nil
}
