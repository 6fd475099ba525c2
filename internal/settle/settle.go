// Package settle computes net balances and settlement suggestions for the
// shared ledger. All functions are pure: they read a snapshot of per-user
// sums supplied by the caller and hold no state of their own, so they are
// safe to call concurrently.
//
// All arithmetic uses decimal.Decimal end to end. Amounts are rounded to two
// fractional digits (half away from zero) only when a suggestion is emitted,
// never during summation.
package settle

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Epsilon is the one-cent tolerance below which a balance or residual
// magnitude is treated as settled.
var Epsilon = decimal.New(1, -2)

// Sums holds the four ledger aggregates for one user, as reported by the
// store. All values are non-negative.
type Sums struct {
	Paid             decimal.Decimal // Expense amounts where the user is payer
	Owed             decimal.Decimal // Participant shares assigned to the user
	PaymentsSent     decimal.Decimal // Payments where the user is source
	PaymentsReceived decimal.Decimal // Payments where the user is destination
}

// Balance is one user's signed net position. The slice order produced by
// ComputeBalances follows the input user order; SimplifyDebts relies on it
// as the tie-break rule.
type Balance struct {
	UserID uuid.UUID
	Net    decimal.Decimal
}

// Suggestion is a proposed debtor-to-creditor transfer, rounded to cents.
type Suggestion struct {
	DebtorID   uuid.UUID
	CreditorID uuid.UUID
	Amount     decimal.Decimal
}

// Result holds the suggestions of a simplification run plus the residual
// magnitude left unmatched. A residual above Epsilon means creditor and
// debtor totals disagreed, which indicates inconsistent upstream data; the
// caller must surface it rather than drop it.
type Result struct {
	Suggestions []Suggestion
	Residual    decimal.Decimal
}

// party is a creditor or debtor with its remaining positive magnitude.
type party struct {
	userID    uuid.UUID
	remaining decimal.Decimal
}
