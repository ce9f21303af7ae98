package allocator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func amounts(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func assertAmounts(t *testing.T, want, got []decimal.Decimal) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "installment %d: want %s, got %s", i+1, want[i], got[i])
	}
}

func TestSplitInstallments_HundredInThree(t *testing.T) {
	// 100.00 / 3 = 33.33 with a 0.01 remainder steered into the first installment
	for _, mode := range []Rounding{Floor, HalfUp} {
		t.Run(mode.String(), func(t *testing.T) {
			got, err := SplitInstallments(decimal.RequireFromString("100.00"), 3, mode)
			require.NoError(t, err)
			assertAmounts(t, amounts("33.34", "33.33", "33.33"), got)
		})
	}
}

func TestSplitInstallments_ExactDivision(t *testing.T) {
	got, err := SplitInstallments(decimal.RequireFromString("100.00"), 2, HalfUp)
	require.NoError(t, err)
	assertAmounts(t, amounts("50.00", "50.00"), got)
}

func TestSplitInstallments_RoundingModesDiffer(t *testing.T) {
	// 100 / 6 = 16.666...
	// Floor:  base 16.66, remainder +0.04
	// HalfUp: base 16.67, remainder -0.02
	floor, err := SplitInstallments(decimal.NewFromInt(100), 6, Floor)
	require.NoError(t, err)
	assertAmounts(t, amounts("16.70", "16.66", "16.66", "16.66", "16.66", "16.66"), floor)

	halfUp, err := SplitInstallments(decimal.NewFromInt(100), 6, HalfUp)
	require.NoError(t, err)
	assertAmounts(t, amounts("16.65", "16.67", "16.67", "16.67", "16.67", "16.67"), halfUp)
}

func TestSplitInstallments_SumInvariant(t *testing.T) {
	totals := []string{"0", "0.01", "0.05", "1", "99.99", "100", "1234.57", "999999.99"}
	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for _, n := range []int{1, 2, 3, 7, 12, 13, 999} {
			for _, mode := range []Rounding{Floor, HalfUp} {
				got, err := SplitInstallments(total, n, mode)
				require.NoError(t, err)
				sum := decimal.Zero
				for _, a := range got {
					sum = sum.Add(a)
				}
				assert.True(t, sum.Equal(total), "total=%s n=%d mode=%s sum=%s", raw, n, mode, sum)
			}
		}
	}
}

func TestSplitInstallments_InvalidInput(t *testing.T) {
	_, err := SplitInstallments(decimal.NewFromInt(-1), 3, Floor)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = SplitInstallments(decimal.NewFromInt(100), 0, Floor)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = SplitInstallments(decimal.NewFromInt(100), domain.MaxInstallments+1, HalfUp)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = SplitInstallments(decimal.NewFromInt(100), 3, Rounding(42))
	assert.ErrorIs(t, err, domain.ErrFatalState)
}
