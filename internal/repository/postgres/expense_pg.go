// internal/repository/postgres/expense_pg.go
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

// ExpenseRepository implements repository.ExpenseRepository for PostgreSQL.
type ExpenseRepository struct {
	// Methods receive a DBExecutor directly instead of holding *sqlx.DB.
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) repository.ExpenseRepository {
	return &ExpenseRepository{}
}

// CreateExpense inserts a new expense record using the provided DBExecutor.
func (r *ExpenseRepository) CreateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `INSERT INTO expenses (id, description, amount, payer_id, incurred_on, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		expense.ID, expense.Description, expense.Amount, expense.PayerID, expense.IncurredOn, expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// AddParticipants inserts the per-user shares of an expense using the provided DBExecutor.
func (r *ExpenseRepository) AddParticipants(ctx context.Context, q repository.DBExecutor, participants []domain.ExpenseParticipant) error {
	query := `INSERT INTO expense_participants (expense_id, user_id, share) VALUES ($1, $2, $3)`
	for _, p := range participants {
		if _, err := q.ExecContext(ctx, query, p.ExpenseID, p.UserID, p.Share); err != nil {
			return fmt.Errorf("failed to add participant %s to expense %s: %w", p.UserID, p.ExpenseID, err)
		}
	}
	return nil
}

// GetExpenseByID retrieves an expense with its participants using the provided DBExecutor.
func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Expense, error) {
	var expense domain.Expense
	query := `SELECT id, description, amount, payer_id, incurred_on, created_at FROM expenses WHERE id = $1`
	err := q.GetContext(ctx, &expense, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID %s: %w", id, err)
	}

	participants := []domain.ExpenseParticipant{}
	participantsQuery := `SELECT expense_id, user_id, share FROM expense_participants WHERE expense_id = $1`
	if err := q.SelectContext(ctx, &participants, participantsQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get participants for expense %s: %w", id, err)
	}
	expense.Participants = participants

	return &expense, nil
}

// ListExpenses retrieves a paginated list of expenses, most recently incurred
// first, plus the total count.
func (r *ExpenseRepository) ListExpenses(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Expense, int64, error) {
	expenses := []domain.Expense{}
	query := `SELECT id, description, amount, payer_id, incurred_on, created_at
              FROM expenses ORDER BY incurred_on DESC, created_at DESC LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &expenses, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	var totalCount int64
	if err := q.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM expenses`); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	return expenses, totalCount, nil
}

// DeleteExpense removes an expense; its participants go with it via cascade.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, q repository.DBExecutor, id uuid.UUID) error {
	result, err := q.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting expense %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// SumAmountsPaidBy returns the total of expense amounts where the user is the payer.
func (r *ExpenseRepository) SumAmountsPaidBy(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE payer_id = $1`
	if err := q.GetContext(ctx, &sum, query, userID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses paid by user %s: %w", userID, err)
	}
	return sum, nil
}

// SumSharesOwedBy returns the total of participant shares assigned to the user.
func (r *ExpenseRepository) SumSharesOwedBy(ctx context.Context, q repository.DBExecutor, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(share), 0) FROM expense_participants WHERE user_id = $1`
	if err := q.GetContext(ctx, &sum, query, userID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum shares owed by user %s: %w", userID, err)
	}
	return sum, nil
}
