// Package postgres provides pgx-backed persistence for users.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saatviknagpal/fitness-app/internal/user/domain"
)

// Repository provides Postgres-backed persistence for user accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ExistsByEmail reports whether a user with the email is already registered.
func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExistsByID reports whether the user id resolves to an account.
func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE user_id=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create persists a new user.
func (r *Repository) Create(ctx context.Context, user domain.User) error {
	const stmt = `INSERT INTO users (user_id, email, password_hash, first_name, last_name, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, stmt,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

// Get retrieves a user by id. A missing row yields (nil, nil).
func (r *Repository) Get(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT user_id, email, password_hash, first_name, last_name, created_at, updated_at
        FROM users WHERE user_id=$1`

	row := r.pool.QueryRow(ctx, query, id)
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
