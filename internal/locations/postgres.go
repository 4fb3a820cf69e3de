package locations

import (
	"context"

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

// ListByUser returns all locations owned by userID, oldest first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]SavedLocation, error) {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	rows, err := s.pool.Query(qctx,
		`SELECT id,user_id,name,latitude,longitude,address,type
		 FROM saved_locations WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locs := []SavedLocation{}
	for rows.Next() {
		var l SavedLocation
		if err := rows.Scan(&l.ID, &l.UserID, &l.Name, &l.Latitude, &l.Longitude, &l.Address, &l.Type); err != nil {
			return nil, err
		}
		locs = append(locs, l)
	}
	return locs, rows.Err()
}

// Insert persists a new saved location.
func (s *PostgresStore) Insert(ctx context.Context, loc *SavedLocation) error {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	_, err := s.pool.Exec(qctx,
		`INSERT INTO saved_locations (id,user_id,name,latitude,longitude,address,type)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		loc.ID, loc.UserID, loc.Name, loc.Latitude, loc.Longitude, loc.Address, loc.Type)
	return err
}

// Delete removes a location if it is owned by userID, else ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, userID, id string) error {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	tag, err := s.pool.Exec(qctx,
		`DELETE FROM saved_locations WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
