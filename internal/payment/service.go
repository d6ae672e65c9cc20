package payment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darkcommerce/storefront-backend/internal/money"
)

const defaultCurrency = "USD"

// Service simulates a payment gateway. The delay stands in for a gateway
// round trip and is cancellable through the request context.
type Service struct {
	delay time.Duration
}

func NewService(delay time.Duration) *Service {
	return &Service{delay: delay}
}

// ProcessRequest carries the fields a client submits for processing.
type ProcessRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	OrderID       int             `json:"orderId"`
}

// Process waits out the simulated gateway delay, then fabricates a
// successful receipt. It returns ctx.Err() if the caller gives up before
// the delay elapses; no receipt is produced in that case.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (Receipt, error) {
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	case <-timer.C:
	}

	return Receipt{
		Success:       true,
		TransactionID: newTransactionID(),
		Amount:        req.Amount,
		Currency:      req.Currency,
		Status:        StatusCompleted,
		OrderID:       req.OrderID,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Lookup fabricates a completed status for any transaction id.
func (s *Service) Lookup(transactionID string) Status {
	return Status{
		TransactionID: transactionID,
		Status:        StatusCompleted,
		Amount:        money.FromFloat(299.99),
		Currency:      defaultCurrency,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// newTransactionID builds a short opaque id in the txn_ namespace.
func newTransactionID() string {
	return "txn_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
