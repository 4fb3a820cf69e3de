package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ridesharex/pkg/db"
)

// PostgresStore is the pgx-backed Store implementation.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps the given pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const userColumns = "id,username,email,phone,password_hash,created_at"

func (s *PostgresStore) scanOne(ctx context.Context, query, arg string) (*User, error) {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	var u User
	err := s.pool.QueryRow(qctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUsername returns the user with the given username, or ErrNotFound.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE username=$1", username)
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE email=$1", email)
}

// FindByID returns the user with the given id, or ErrNotFound.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*User, error) {
	return s.scanOne(ctx, "SELECT "+userColumns+" FROM users WHERE id=$1", id)
}

// Insert persists a new user. A unique-constraint violation on username
// or email surfaces as ErrDuplicate.
func (s *PostgresStore) Insert(ctx context.Context, u *User) error {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	_, err := s.pool.Exec(qctx,
		`INSERT INTO users (id,username,email,phone,password_hash) VALUES ($1,$2,$3,$4,$5)`,
		u.ID, u.Username, u.Email, u.Phone, u.PasswordHash)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
