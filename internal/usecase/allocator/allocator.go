package allocator

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/simaogato/walletledger-backend/internal/domain"
)

// Rounding selects how the per-installment base amount is rounded
type Rounding int

const (
	// Floor truncates the base towards zero. Used when a debt is registered.
	Floor Rounding = iota
	// HalfUp rounds the base half-up. Used when an existing schedule is rebalanced.
	HalfUp
)

func (r Rounding) String() string {
	switch r {
	case Floor:
		return "FLOOR"
	case HalfUp:
		return "HALF_UP"
	default:
		return "UNKNOWN"
	}
}

// BaseAndRemainder splits totalAmount into n installments.
// Logic:
//  1. base = totalAmount / n rounded to 2 places with the given mode
//  2. remainder = totalAmount - base*n, the exact residual (may be negative for HalfUp)
func BaseAndRemainder(totalAmount decimal.Decimal, n int, mode Rounding) (decimal.Decimal, decimal.Decimal, error) {
	if totalAmount.IsNegative() {
		return decimal.Zero, decimal.Zero, domain.Validationf("total amount cannot be negative")
	}
	if err := domain.ValidateInstallments(n); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	count := decimal.NewFromInt(int64(n))
	var base decimal.Decimal
	switch mode {
	case Floor:
		base = totalAmount.Div(count).RoundFloor(domain.MoneyScale)
	case HalfUp:
		base = totalAmount.DivRound(count, domain.MoneyScale)
	default:
		return decimal.Zero, decimal.Zero, domain.FatalStatef("unknown rounding mode %d", mode)
	}

	remainder := totalAmount.Sub(base.Mul(count))
	return base, remainder, nil
}

// SplitInstallments returns the n installment amounts of totalAmount.
// Index 0 is installment #1 and carries base+remainder; every other index carries base.
//
// Safety: Ensures the installments sum to totalAmount exactly (no penny lost)
func SplitInstallments(totalAmount decimal.Decimal, n int, mode Rounding) ([]decimal.Decimal, error) {
	base, remainder, err := BaseAndRemainder(totalAmount, n, mode)
	if err != nil {
		return nil, err
	}

	amounts := make([]decimal.Decimal, n)
	for i := range amounts {
		amounts[i] = base
	}
	amounts[0] = base.Add(remainder)

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	if !total.Equal(totalAmount) {
		return nil, errors.New("installments do not sum to the total amount")
	}

	return amounts, nil
}
