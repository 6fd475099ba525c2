// internal/repository/postgres/payment_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
	"splitledger/internal/repository"
	"splitledger/internal/util"
)

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct {
	// Methods receive a DBExecutor directly instead of holding *sqlx.DB.
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &PaymentRepository{}
}

// CreatePayment inserts a new payment record using the provided DBExecutor.
func (r *PaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `INSERT INTO payments (id, from_user_id, to_user_id, amount, description, paid_at, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		payment.ID, payment.FromUserID, payment.ToUserID, payment.Amount,
		payment.Description, payment.PaidAt, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPaymentByID retrieves a payment by its ID using the provided DBExecutor.
func (r *PaymentRepository) GetPaymentByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	query := `SELECT id, from_user_id, to_user_id, amount, description, paid_at, created_at
              FROM payments WHERE id = $1`
	err := q.GetContext(ctx, &payment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID %s: %w", id, err)
	}
	return &payment, nil
}

// ListPayments retrieves a paginated list of payments, most recent first,
// plus the total count.
func (r *PaymentRepository) ListPayments(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Payment, int64, error) {
	payments := []domain.Payment{}
	query := `SELECT id, from_user_id, to_user_id, amount, description, paid_at, created_at
              FROM payments ORDER BY paid_at DESC, created_at DESC LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &payments, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	var totalCount int64
	if err := q.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM payments`); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return payments, totalCount, nil
}

// DeletePayment removes a payment record using the provided DBExecutor.
func (r *PaymentRepository) DeletePayment(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting payment %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// SumAmountsSentBy returns the total of payments where the user is the source.
func (r *PaymentRepository) SumAmountsSentBy(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE from_user_id = $1`
	if err := q.GetContext(ctx, &sum, query, userID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments sent by user %s: %w", userID, err)
	}
	return sum, nil
}

// SumAmountsReceivedBy returns the total of payments where the user is the destination.
func (r *PaymentRepository) SumAmountsReceivedBy(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE to_user_id = $1`
	if err := q.GetContext(ctx, &sum, query, userID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments received by user %s: %w", userID, err)
	}
	return sum, nil
}
