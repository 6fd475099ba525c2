package settle

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bal(id uuid.UUID, net string) Balance {
	return Balance{UserID: id, Net: dec(net)}
}

func TestSimplifyDebts(t *testing.T) {
	tests := []struct {
		name         string
		balances     []Balance
		want         []Suggestion
		wantResidual string
	}{
		{
			name:     "one creditor two equal debtors",
			balances: []Balance{bal(userA, "20"), bal(userB, "-10"), bal(userC, "-10")},
			// B and C tie at magnitude 10; stable sort keeps B first.
			want: []Suggestion{
				{DebtorID: userB, CreditorID: userA, Amount: dec("10.00")},
				{DebtorID: userC, CreditorID: userA, Amount: dec("10.00")},
			},
			wantResidual: "0",
		},
		{
			name:     "uneven cent split settles exactly",
			balances: []Balance{bal(userA, "66.66"), bal(userB, "-33.33"), bal(userC, "-33.33")},
			want: []Suggestion{
				{DebtorID: userB, CreditorID: userA, Amount: dec("33.33")},
				{DebtorID: userC, CreditorID: userA, Amount: dec("33.33")},
			},
			wantResidual: "0",
		},
		{
			name:     "partially settled by a payment",
			balances: []Balance{bal(userA, "10"), bal(userB, "0"), bal(userC, "-10")},
			want: []Suggestion{
				{DebtorID: userC, CreditorID: userA, Amount: dec("10.00")},
			},
			wantResidual: "0",
		},
		{
			name:         "all balances within epsilon yield nothing",
			balances:     []Balance{bal(userA, "0.01"), bal(userB, "-0.01"), bal(userC, "0")},
			want:         nil,
			wantResidual: "0",
		},
		{
			name:         "empty input",
			balances:     nil,
			want:         nil,
			wantResidual: "0",
		},
		{
			name: "largest debtor matched against largest creditor",
			balances: []Balance{
				bal(userA, "50"), bal(userB, "30"), bal(userC, "-60"), bal(userD, "-20"),
			},
			want: []Suggestion{
				{DebtorID: userC, CreditorID: userA, Amount: dec("50.00")},
				{DebtorID: userC, CreditorID: userB, Amount: dec("10.00")},
				{DebtorID: userD, CreditorID: userB, Amount: dec("20.00")},
			},
			wantResidual: "0",
		},
		{
			name: "one cent rounding residue is reported",
			// Shares summing to 99.99 against a 100 expense leave one cent
			// unmatched; the plan is still emitted.
			balances: []Balance{bal(userA, "66.67"), bal(userB, "-33.33"), bal(userC, "-33.33")},
			want: []Suggestion{
				{DebtorID: userB, CreditorID: userA, Amount: dec("33.33")},
				{DebtorID: userC, CreditorID: userA, Amount: dec("33.33")},
			},
			wantResidual: "0.01",
		},
		{
			name:     "inconsistent totals leave a residual",
			balances: []Balance{bal(userA, "20"), bal(userB, "-10")},
			want: []Suggestion{
				{DebtorID: userB, CreditorID: userA, Amount: dec("10.00")},
			},
			wantResidual: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SimplifyDebts(tt.balances)

			require.Len(t, result.Suggestions, len(tt.want))
			for i, want := range tt.want {
				got := result.Suggestions[i]
				assert.Equal(t, want.DebtorID, got.DebtorID, "suggestion %d debtor", i)
				assert.Equal(t, want.CreditorID, got.CreditorID, "suggestion %d creditor", i)
				assert.True(t, got.Amount.Equal(want.Amount),
					"suggestion %d amount = %s, want %s", i, got.Amount, want.Amount)
			}
			assert.True(t, result.Residual.Equal(dec(tt.wantResidual)),
				"residual = %s, want %s", result.Residual, tt.wantResidual)
		})
	}
}

func TestSimplifyDebtsProperties(t *testing.T) {
	cases := [][]Balance{
		{bal(userA, "20"), bal(userB, "-10"), bal(userC, "-10")},
		{bal(userA, "66.66"), bal(userB, "-33.33"), bal(userC, "-33.33")},
		{bal(userA, "50"), bal(userB, "30"), bal(userC, "-60"), bal(userD, "-20")},
		{bal(userA, "0.02"), bal(userB, "-0.02")},
		{bal(userA, "1234.56"), bal(userB, "-1000"), bal(userC, "-234.56")},
	}

	for _, balances := range cases {
		result := SimplifyDebts(balances)

		// Settlement correctness: applying every suggestion drives all
		// balances within epsilon of zero.
		remaining := make(map[uuid.UUID]decimal.Decimal, len(balances))
		for _, b := range balances {
			remaining[b.UserID] = b.Net
		}
		for _, s := range result.Suggestions {
			remaining[s.DebtorID] = remaining[s.DebtorID].Add(s.Amount)
			remaining[s.CreditorID] = remaining[s.CreditorID].Sub(s.Amount)
		}
		for id, net := range remaining {
			assert.True(t, net.Abs().LessThanOrEqual(Epsilon),
				"user %s left with %s after applying suggestions", id, net)
		}

		// Minimality bound: never more than creditors+debtors-1 transfers.
		var creditors, debtors int
		for _, b := range balances {
			switch {
			case b.Net.GreaterThan(Epsilon):
				creditors++
			case b.Net.LessThan(Epsilon.Neg()):
				debtors++
			}
		}
		if creditors+debtors > 0 {
			assert.LessOrEqual(t, len(result.Suggestions), creditors+debtors-1)
		}

		// No self-settlement.
		for _, s := range result.Suggestions {
			assert.NotEqual(t, s.DebtorID, s.CreditorID)
		}

		// Idempotence: a second run over the same input is identical.
		again := SimplifyDebts(balances)
		assert.Equal(t, result, again)
	}
}
