// internal/settle/balances.go
package settle

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"splitledger/internal/util"
)

// ComputeBalances converts per-user ledger sums into one signed net balance
// per user:
//
//	net = (paid - paymentsReceived) - (owed - paymentsSent)
//
// Users are processed in input order and the output preserves that order.
// A user missing from sums is treated as all-zero. Any negative sum fails
// fast with util.ErrInvalidAmount before any arithmetic runs.
func ComputeBalances(userIDs []uuid.UUID, sums map[uuid.UUID]Sums) ([]Balance, error) {
	for _, id := range userIDs {
		if err := validateSums(id, sums[id]); err != nil {
			return nil, err
		}
	}

	balances := make([]Balance, 0, len(userIDs))
	for _, id := range userIDs {
		s := sums[id]
		net := s.Paid.Sub(s.PaymentsReceived).Sub(s.Owed.Sub(s.PaymentsSent))
		balances = append(balances, Balance{UserID: id, Net: net})
	}
	return balances, nil
}

func validateSums(userID uuid.UUID, s Sums) error {
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"paid", s.Paid},
		{"owed", s.Owed},
		{"payments_sent", s.PaymentsSent},
		{"payments_received", s.PaymentsReceived},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("user %s: %s sum %s: %w", userID, f.name, f.value, util.ErrInvalidAmount)
		}
	}
	return nil
}
