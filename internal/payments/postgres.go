package payments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const methodColumns = "id,user_id,type,last_four,holder_name,is_default,provider,encrypted_details,created_at"

// ListMethods returns the user's payment methods, default first.
func (s *PostgresStore) ListMethods(ctx context.Context, userID string) ([]PaymentMethod, error) {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	rows, err := s.pool.Query(qctx,
		`SELECT `+methodColumns+` FROM payment_methods
		 WHERE user_id=$1 ORDER BY is_default DESC, created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := []PaymentMethod{}
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.UserID, &m.Type, &m.LastFour, &m.HolderName,
			&m.IsDefault, &m.Provider, &m.EncryptedDetails, &m.CreatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// FindMethod returns one of the user's methods, or ErrMethodNotFound.
func (s *PostgresStore) FindMethod(ctx context.Context, userID, id string) (*PaymentMethod, error) {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	var m PaymentMethod
	err := s.pool.QueryRow(qctx,
		`SELECT `+methodColumns+` FROM payment_methods WHERE id=$1 AND user_id=$2`, id, userID).
		Scan(&m.ID, &m.UserID, &m.Type, &m.LastFour, &m.HolderName,
			&m.IsDefault, &m.Provider, &m.EncryptedDetails, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMethodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertMethod persists a new method, clearing the previous default in
// the same transaction when the new one is default.
func (s *PostgresStore) InsertMethod(ctx context.Context, m *PaymentMethod) error {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	return pgx.BeginFunc(qctx, s.pool, func(tx pgx.Tx) error {
		if m.IsDefault {
			if _, err := tx.Exec(qctx,
				`UPDATE payment_methods SET is_default=FALSE WHERE user_id=$1 AND is_default`, m.UserID); err != nil {
				return err
			}
		}
		_, err := tx.Exec(qctx,
			`INSERT INTO payment_methods (id,user_id,type,last_four,holder_name,is_default,provider,encrypted_details)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			m.ID, m.UserID, m.Type, m.LastFour, m.HolderName, m.IsDefault, m.Provider, m.EncryptedDetails)
		return err
	})
}

// ListTransactions returns the user's transactions, newest first.
func (s *PostgresStore) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	rows, err := s.pool.Query(qctx,
		`SELECT id,user_id,ride_id,amount,payment_method_id,status,transaction_id,created_at
		 FROM transactions WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.RideID, &t.Amount,
			&t.PaymentMethodID, &t.Status, &t.TransactionID, &t.CreatedAt); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// InsertTransaction persists a new transaction record.
func (s *PostgresStore) InsertTransaction(ctx context.Context, t *Transaction) error {
	qctx, cancel := db.QueryContext(ctx)
	defer cancel()

	_, err := s.pool.Exec(qctx,
		`INSERT INTO transactions (id,user_id,ride_id,amount,payment_method_id,status,transaction_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		t.ID, t.UserID, t.RideID, t.Amount, t.PaymentMethodID, t.Status, t.TransactionID)
	return err
}
