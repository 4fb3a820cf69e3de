package payments

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ridesharex/internal/events"
	"ridesharex/pkg/kafka"
)

// ErrInvalidAmount is returned when a charge amount is not positive.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInvalidMethod is returned when a method is missing required fields.
var ErrInvalidMethod = errors.New("type and last four digits are required")

// Publisher is the slice of the kafka client the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service contains payment business logic.
type Service struct {
	store Store
	pub   Publisher
}

// NewService creates a payment service. pub may be nil in tests.
func NewService(store Store, pub Publisher) *Service {
	return &Service{store: store, pub: pub}
}

// ListMethods returns the user's payment methods.
func (s *Service) ListMethods(ctx context.Context, userID string) ([]PaymentMethod, error) {
	return s.store.ListMethods(ctx, userID)
}

// AddMethod stores a new payment method. At most one method per user is
// the default; setting the flag here clears it elsewhere.
func (s *Service) AddMethod(ctx context.Context, userID string, req AddMethodRequest) (*PaymentMethod, error) {
	if strings.TrimSpace(req.Type) == "" || len(req.LastFour) != 4 {
		return nil, ErrInvalidMethod
	}

	m := &PaymentMethod{
		ID:               uuid.New().String(),
		UserID:           userID,
		Type:             strings.ToUpper(strings.TrimSpace(req.Type)),
		LastFour:         req.LastFour,
		HolderName:       req.HolderName,
		IsDefault:        req.IsDefault,
		Provider:         req.Provider,
		EncryptedDetails: req.EncryptedDetails,
		CreatedAt:        time.Now(),
	}
	if err := s.store.InsertMethod(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListTransactions returns the user's transaction history, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	return s.store.ListTransactions(ctx, userID)
}

// Process records a charge against one of the user's payment methods and
// publishes payment.processed. There is no gateway behind this: recording
// the transaction is the processing.
func (s *Service) Process(ctx context.Context, userID string, req ProcessRequest) (*Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.store.FindMethod(ctx, userID, req.PaymentMethodID); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Transaction{
		ID:              uuid.New().String(),
		UserID:          userID,
		RideID:          req.RideID,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
		Status:          StatusCompleted,
		TransactionID:   "TXN-" + strings.ToUpper(uuid.New().String()[:8]),
		CreatedAt:       now,
	}
	if err := s.store.InsertTransaction(ctx, t); err != nil {
		return nil, err
	}

	if s.pub != nil {
		go func() {
			ev := events.PaymentProcessedEvent{
				TransactionID:   t.TransactionID,
				UserID:          userID,
				PaymentMethodID: t.PaymentMethodID,
				Amount:          t.Amount,
				Status:          t.Status,
				ProcessedAt:     now.Format(time.RFC3339),
			}
			if err := s.pub.Publish(context.Background(), kafka.TopicPaymentProcessed, t.ID, ev); err != nil {
				log.Printf("[payments] failed to publish payment.processed: %v", err)
			}
		}()
	}

	return t, nil
}
