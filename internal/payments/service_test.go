package payments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridesharex/internal/events"
	"ridesharex/pkg/kafka"
)

type memStore struct {
	mu      sync.Mutex
	methods []PaymentMethod
	txns    []Transaction
}

func (m *memStore) ListMethods(_ context.Context, userID string) ([]PaymentMethod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []PaymentMethod{}
	for _, pm := range m.methods {
		if pm.UserID == userID {
			out = append(out, pm)
		}
	}
	return out, nil
}

func (m *memStore) FindMethod(_ context.Context, userID, id string) (*PaymentMethod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, pm := range m.methods {
		if pm.ID == id && pm.UserID == userID {
			clone := pm
			return &clone, nil
		}
	}
	return nil, ErrMethodNotFound
}

func (m *memStore) InsertMethod(_ context.Context, method *PaymentMethod) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if method.IsDefault {
		for i := range m.methods {
			if m.methods[i].UserID == method.UserID {
				m.methods[i].IsDefault = false
			}
		}
	}
	m.methods = append(m.methods, *method)
	return nil
}

func (m *memStore) ListTransactions(_ context.Context, userID string) ([]Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Transaction{}
	for i := len(m.txns) - 1; i >= 0; i-- {
		if m.txns[i].UserID == userID {
			out = append(out, m.txns[i])
		}
	}
	return out, nil
}

func (m *memStore) InsertTransaction(_ context.Context, t *Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns = append(m.txns, *t)
	return nil
}

// chanPublisher captures publishes so tests can wait on the async send.
type published struct {
	topic string
	value any
}

type chanPublisher struct {
	ch chan published
}

func (p *chanPublisher) Publish(_ context.Context, topic, _ string, value any) error {
	p.ch <- published{topic: topic, value: value}
	return nil
}

func TestAddMethodDefaultFlag(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)
	ctx := context.Background()

	first, err := svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "card", LastFour: "4242", IsDefault: true, Provider: "Visa"})
	require.NoError(t, err)
	assert.Equal(t, "CARD", first.Type)
	assert.True(t, first.IsDefault)

	second, err := svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "MOBILE_BANKING", LastFour: "0001", IsDefault: true, Provider: "bKash"})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	methods, err := svc.ListMethods(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, methods, 2)

	defaults := 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			assert.Equal(t, second.ID, m.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAddMethodValidation(t *testing.T) {
	svc := NewService(&memStore{}, nil)
	ctx := context.Background()

	_, err := svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "", LastFour: "4242"})
	assert.ErrorIs(t, err, ErrInvalidMethod)

	_, err = svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "CARD", LastFour: "42"})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestProcessRecordsTransactionAndPublishes(t *testing.T) {
	store := &memStore{}
	pub := &chanPublisher{ch: make(chan published, 1)}
	svc := NewService(store, pub)
	ctx := context.Background()

	method, err := svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "CARD", LastFour: "4242", Provider: "Visa"})
	require.NoError(t, err)

	txn, err := svc.Process(ctx, "u1", ProcessRequest{Amount: 185.50, PaymentMethodID: method.ID})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, txn.Status)
	assert.NotEmpty(t, txn.TransactionID)

	history, err := svc.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, txn.ID, history[0].ID)

	select {
	case p := <-pub.ch:
		assert.Equal(t, kafka.TopicPaymentProcessed, p.topic)
		ev, ok := p.value.(events.PaymentProcessedEvent)
		require.True(t, ok)
		assert.Equal(t, txn.TransactionID, ev.TransactionID)
		assert.Equal(t, 185.50, ev.Amount)
		assert.Equal(t, StatusCompleted, ev.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("payment.processed was never published")
	}
}

func TestProcessRejectsBadInput(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)
	ctx := context.Background()

	method, err := svc.AddMethod(ctx, "u1", AddMethodRequest{Type: "CARD", LastFour: "4242"})
	require.NoError(t, err)

	_, err = svc.Process(ctx, "u1", ProcessRequest{Amount: 0, PaymentMethodID: method.ID})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Process(ctx, "u1", ProcessRequest{Amount: 10, PaymentMethodID: "missing"})
	assert.ErrorIs(t, err, ErrMethodNotFound)

	// A method belonging to another user is invisible.
	_, err = svc.Process(ctx, "u2", ProcessRequest{Amount: 10, PaymentMethodID: method.ID})
	assert.ErrorIs(t, err, ErrMethodNotFound)

	history, err := svc.ListTransactions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
