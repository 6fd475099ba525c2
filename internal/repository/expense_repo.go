// internal/repository/expense_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations.
type ExpenseRepository interface {
	// CreateExpense adds a new expense record using the provided DBExecutor.
	// Participants are inserted separately via AddParticipants so both can
	// run inside one transaction.
	CreateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// AddParticipants inserts the per-user shares of an expense.
	AddParticipants(ctx context.Context, q DBExecutor, participants []domain.ExpenseParticipant) error
	// GetExpenseByID retrieves an expense with its participants.
	GetExpenseByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Expense, error)
	// ListExpenses retrieves a page of expenses, most recently incurred first.
	ListExpenses(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Expense, int64, error)
	// DeleteExpense removes an expense and (via cascade) its participants.
	DeleteExpense(ctx context.Context, q DBExecutor, id uuid.UUID) error

	// SumAmountsPaidBy returns the total of expense amounts where the user is
	// the payer. Zero when the user paid nothing.
	SumAmountsPaidBy(ctx context.Context, q DBExecutor, userID uuid.UUID) (decimal.Decimal, error)
	// SumSharesOwedBy returns the total of participant shares assigned to the
	// user across all expenses.
	SumSharesOwedBy(ctx context.Context, q DBExecutor, userID uuid.UUID) (decimal.Decimal, error)
}
