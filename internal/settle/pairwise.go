// internal/settle/pairwise.go
package settle

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResolvePairwiseDebts computes per-debtor allocations across creditors in
// the store's enumeration order, without the global netting and sorting that
// SimplifyDebts performs.
//
// This is an intentionally different view: it generally emits more transfers
// than SimplifyDebts, but the result is stable against insertion order, so
// the UI can show "who specifically owes whom" without suggestions jumping
// around as amounts shift. The two algorithms are kept separate on purpose;
// do not fold one into the other.
//
// Unlike SimplifyDebts there is no epsilon pre-filter: any user with a
// strictly positive net is a creditor candidate and any user with a strictly
// negative net is a debtor candidate. Each debtor's debt is walked across
// the creditors in order, allocating min(remainingDebt, remainingCredit) at
// each step until the debt is exhausted or no creditors remain.
func ResolvePairwiseDebts(userIDs []uuid.UUID, sums map[uuid.UUID]Sums) ([]Suggestion, error) {
	balances, err := ComputeBalances(userIDs, sums)
	if err != nil {
		return nil, err
	}

	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Net.IsPositive():
			creditors = append(creditors, party{userID: b.UserID, remaining: b.Net})
		case b.Net.IsNegative():
			debtors = append(debtors, party{userID: b.UserID, remaining: b.Net.Neg()})
		}
	}

	var suggestions []Suggestion
	for d := range debtors {
		for c := range creditors {
			if !debtors[d].remaining.IsPositive() {
				break
			}
			if !creditors[c].remaining.IsPositive() {
				continue
			}

			amount := decimal.Min(debtors[d].remaining, creditors[c].remaining)
			suggestions = append(suggestions, Suggestion{
				DebtorID:   debtors[d].userID,
				CreditorID: creditors[c].userID,
				Amount:     amount.Round(2),
			})

			debtors[d].remaining = debtors[d].remaining.Sub(amount)
			creditors[c].remaining = creditors[c].remaining.Sub(amount)
		}
	}

	return suggestions, nil
}
