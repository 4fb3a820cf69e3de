package events

// UserRegisteredEvent is published to user.registered.
type UserRegisteredEvent struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registered_at"`
}

// PaymentProcessedEvent is published to payment.processed.
type PaymentProcessedEvent struct {
	TransactionID   string  `json:"transaction_id"`
	UserID          string  `json:"user_id"`
	PaymentMethodID string  `json:"payment_method_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	ProcessedAt     string  `json:"processed_at"`
}
