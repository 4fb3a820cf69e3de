package payments

import "time"

// Transaction statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// PaymentMethod is a stored way to pay: a card or a mobile-banking
// account. Only the last four digits are kept in the clear; the rest
// lives behind an encrypted-details reference that is never serialized.
type PaymentMethod struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`     // CARD, MOBILE_BANKING, ...
	LastFour         string    `json:"last_four"`
	HolderName       string    `json:"holder_name"`
	IsDefault        bool      `json:"is_default"`
	Provider         string    `json:"provider"` // Visa, bKash, Nagad, ...
	EncryptedDetails string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

// Transaction is a completed or attempted charge against a payment method.
type Transaction struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	RideID          *string   `json:"ride_id,omitempty"`
	Amount          float64   `json:"amount"`
	PaymentMethodID string    `json:"payment_method_id"`
	Status          string    `json:"status"`
	TransactionID   string    `json:"transaction_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// AddMethodRequest is the body for POST /api/payments/methods.
type AddMethodRequest struct {
	Type             string `json:"type"`
	LastFour         string `json:"last_four"`
	HolderName       string `json:"holder_name"`
	IsDefault        bool   `json:"is_default"`
	Provider         string `json:"provider"`
	EncryptedDetails string `json:"encrypted_details"`
}

// ProcessRequest is the body for POST /api/payments/process.
type ProcessRequest struct {
	Amount          float64 `json:"amount"`
	PaymentMethodID string  `json:"payment_method_id"`
	RideID          *string `json:"ride_id,omitempty"`
}
