// internal/domain/settlement.go
package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemberBalance is a user's signed net position, derived on every request and
// never persisted. Positive means the group owes the user money.
type MemberBalance struct {
	UserID uuid.UUID       `json:"user_id"`
	Name   string          `json:"name"`
	Net    decimal.Decimal `json:"net"`
}

// SettlementSuggestion is a proposed direct transfer from a debtor to a
// creditor that reduces both outstanding positions.
type SettlementSuggestion struct {
	DebtorID     uuid.UUID       `json:"debtor_id"`
	DebtorName   string          `json:"debtor_name"`
	CreditorID   uuid.UUID       `json:"creditor_id"`
	CreditorName string          `json:"creditor_name"`
	Amount       decimal.Decimal `json:"amount"`
}

// SettlementPlan is the full set of suggestions plus the residual magnitude
// left unmatched. A residual above one cent indicates inconsistent upstream
// data (e.g. shares that do not sum to their expense total); it is reported,
// not treated as an error.
type SettlementPlan struct {
	Suggestions []SettlementSuggestion `json:"suggestions"`
	Residual    decimal.Decimal        `json:"residual"`
}
