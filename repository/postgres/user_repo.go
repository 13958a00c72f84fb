package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/focusdo/backend/domain"
	"github.com/focusdo/backend/repository"
)

const uniqueViolation = "23505"

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO users (id, username, email, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
	).Scan(&user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrUsernameTaken()
		}
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE id = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
	SELECT id, username, email, password_hash, created_at
	FROM users
	WHERE username = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, username))
}

// Delete removes the account; owned tasks, subtasks, and focus sessions
// go with it through the schema's cascade rules.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
