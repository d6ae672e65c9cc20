package payment

import "github.com/shopspring/decimal"

// StatusCompleted is the only outcome the mock gateway produces.
const StatusCompleted = "completed"

// Receipt is the fabricated transaction returned by the mock gateway.
// Receipts are never stored; every call generates a fresh one.
type Receipt struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	OrderID       int             `json:"orderId,omitempty"`
	Timestamp     string          `json:"timestamp"`
}

// Status is the fabricated result of a status lookup. The mock keeps no
// transaction history, so the fields never reflect a real payment.
type Status struct {
	TransactionID string          `json:"transactionId"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Timestamp     string          `json:"timestamp"`
}
