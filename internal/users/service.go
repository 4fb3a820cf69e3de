package users

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"ridesharex/internal/events"
	"ridesharex/pkg/hash"
	"ridesharex/pkg/kafka"
)

// ErrDuplicateCredential is returned when a registration collides with an
// existing username or email. It deliberately does not say which.
var ErrDuplicateCredential = errors.New("username or email already exists")

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password; the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Publisher is the slice of the kafka client the service needs.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service contains credential business logic.
type Service struct {
	store  Store
	hasher hash.Hasher
	pub    Publisher
}

// NewService creates a credential service. The hasher is an explicit
// dependency, never shared ambient state. pub may be nil in tests.
func NewService(store Store, hasher hash.Hasher, pub Publisher) *Service {
	return &Service{store: store, hasher: hasher, pub: pub}
}

// Register creates a new rider account. Both lookups are early exits;
// the store's unique constraints are the real serialization point for
// concurrent duplicate registrations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if _, err := s.store.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrDuplicateCredential
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if _, err := s.store.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrDuplicateCredential
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: digest,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Insert(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrDuplicateCredential
		}
		return nil, err
	}

	if s.pub != nil {
		go func() {
			ev := events.UserRegisteredEvent{
				UserID:       u.ID,
				Username:     u.Username,
				RegisteredAt: u.CreatedAt.Format(time.RFC3339),
			}
			if err := s.pub.Publish(context.Background(), kafka.TopicUserRegistered, u.ID, ev); err != nil {
				log.Printf("[users] failed to publish user.registered: %v", err)
			}
		}()
	}

	return u, nil
}

// Authenticate verifies a username/password pair and returns the account.
// No side effects on failure.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.store.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID fetches a single user by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.store.FindByID(ctx, id)
}
