// internal/domain/payment.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Payment represents a settlement transfer between two users: the source user
// (a debtor paying down their debt) pays the destination user (a creditor).
type Payment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	FromUserID  uuid.UUID       `db:"from_user_id" json:"from_user_id"` // Debtor making the payment
	ToUserID    uuid.UUID       `db:"to_user_id" json:"to_user_id"`     // Creditor receiving it
	Amount      decimal.Decimal `db:"amount" json:"amount"`             // Strictly positive, NUMERIC(12, 2) in DB
	Description *string         `db:"description" json:"description"`   // Optional note
	PaidAt      time.Time       `db:"paid_at" json:"paid_at"`           // Actual time of the payment
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// NewPayment creates a new Payment instance.
func NewPayment(fromUserID, toUserID uuid.UUID, amount decimal.Decimal, description *string, paidAt time.Time) *Payment {
	return &Payment{
		ID:          uuid.New(),
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		Amount:      amount,
		Description: description,
		PaidAt:      paidAt,
		CreatedAt:   time.Now().UTC(),
	}
}
