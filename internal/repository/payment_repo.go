// internal/repository/payment_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
)

// PaymentRepository defines the interface for payment data operations.
type PaymentRepository interface {
	// CreatePayment adds a new payment record using the provided DBExecutor.
	CreatePayment(ctx context.Context, q DBExecutor, payment *domain.Payment) error
	// GetPaymentByID retrieves a payment by its ID.
	GetPaymentByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Payment, error)
	// ListPayments retrieves a page of payments, most recent first.
	ListPayments(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Payment, int64, error)
	// DeletePayment removes a payment record.
	DeletePayment(ctx context.Context, q DBExecutor, id uuid.UUID) error

	// SumAmountsSentBy returns the total of payments where the user is the
	// source. Zero when the user sent nothing.
	SumAmountsSentBy(ctx context.Context, q DBExecutor, userID uuid.UUID) (decimal.Decimal, error)
	// SumAmountsReceivedBy returns the total of payments where the user is
	// the destination.
	SumAmountsReceivedBy(ctx context.Context, q DBExecutor, userID uuid.UUID) (decimal.Decimal, error)
}
