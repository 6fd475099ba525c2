// internal/domain/expense.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Expense represents a shared cost paid by one user on behalf of the group.
type Expense struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`           // Total amount, NUMERIC(12, 2) in DB
	PayerID     uuid.UUID       `db:"payer_id" json:"payer_id"`       // User who paid the full amount
	IncurredOn  time.Time       `db:"incurred_on" json:"incurred_on"` // Date the expense was incurred
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`

	// Participants carries this expense's per-user shares. Populated by the
	// repository, not stored on the expenses table itself.
	Participants []ExpenseParticipant `db:"-" json:"participants"`
}

// ExpenseParticipant links an expense to a user with that user's share of it.
// The shares of one expense are expected to sum to the expense amount.
type ExpenseParticipant struct {
	ExpenseID uuid.UUID       `db:"expense_id" json:"expense_id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Share     decimal.Decimal `db:"share" json:"share"` // NUMERIC(12, 2) in DB
}

// NewExpense creates a new Expense instance.
func NewExpense(description string, amount decimal.Decimal, payerID uuid.UUID, incurredOn time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		PayerID:     payerID,
		IncurredOn:  incurredOn,
		CreatedAt:   time.Now().UTC(),
	}
}
