package payments

import (
	"context"
	"errors"
)

// ErrMethodNotFound indicates the payment method does not exist or
// belongs to another user.
var ErrMethodNotFound = errors.New("payment method not found")

// Store abstracts payment persistence.
type Store interface {
	ListMethods(ctx context.Context, userID string) ([]PaymentMethod, error)
	FindMethod(ctx context.Context, userID, id string) (*PaymentMethod, error)
	// InsertMethod persists a new method. When m.IsDefault is set, the
	// user's previous default is cleared in the same transaction.
	InsertMethod(ctx context.Context, m *PaymentMethod) error
	ListTransactions(ctx context.Context, userID string) ([]Transaction, error)
	InsertTransaction(ctx context.Context, t *Transaction) error
}
