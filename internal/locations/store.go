package locations

import (
	"context"
	"errors"
)

// ErrNotFound indicates the location does not exist or belongs to
// another user.
var ErrNotFound = errors.New("location not found")

// Store abstracts saved-location persistence.
type Store interface {
	ListByUser(ctx context.Context, userID string) ([]SavedLocation, error)
	Insert(ctx context.Context, loc *SavedLocation) error
	Delete(ctx context.Context, userID, id string) error
}
