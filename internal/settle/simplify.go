// internal/settle/simplify.go
package settle

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SimplifyDebts reduces a set of net balances to a minimal list of direct
// transfers that settles every position.
//
// Users within Epsilon of zero are dropped. The rest are partitioned into
// creditors and debtors, each sorted descending by magnitude. Ties keep the
// order of the balances slice (the store's enumeration order); this is a
// deliberate, tested choice since a different tie-break produces a different
// but equally valid plan.
//
// A two-pointer greedy walk then matches the current largest creditor with
// the current largest debtor, transferring the smaller of the two remaining
// magnitudes and advancing whichever side drops below Epsilon. This emits at
// most creditors+debtors-1 suggestions.
//
// SimplifyDebts cannot fail. If creditor and debtor totals disagree, the
// leftover magnitude is reported in Result.Residual for the caller to
// surface; the partial plan is still returned.
func SimplifyDebts(balances []Balance) Result {
	var creditors, debtors []party
	for _, b := range balances {
		switch {
		case b.Net.GreaterThan(Epsilon):
			creditors = append(creditors, party{userID: b.UserID, remaining: b.Net})
		case b.Net.LessThan(Epsilon.Neg()):
			debtors = append(debtors, party{userID: b.UserID, remaining: b.Net.Neg()})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining.GreaterThan(creditors[j].remaining)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining.GreaterThan(debtors[j].remaining)
	})

	var suggestions []Suggestion
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := decimal.Min(creditors[i].remaining, debtors[j].remaining)

		suggestions = append(suggestions, Suggestion{
			DebtorID:   debtors[j].userID,
			CreditorID: creditors[i].userID,
			Amount:     amount.Round(2),
		})

		creditors[i].remaining = creditors[i].remaining.Sub(amount)
		debtors[j].remaining = debtors[j].remaining.Sub(amount)

		if creditors[i].remaining.LessThan(Epsilon) {
			i++
		}
		if debtors[j].remaining.LessThan(Epsilon) {
			j++
		}
	}

	// Whatever is left on either side after one queue is exhausted was
	// unmatchable: creditor and debtor totals disagreed upstream.
	residual := decimal.Zero
	for _, c := range creditors {
		residual = residual.Add(c.remaining)
	}
	for _, d := range debtors {
		residual = residual.Sub(d.remaining)
	}

	return Result{Suggestions: suggestions, Residual: residual.Abs()}
}
