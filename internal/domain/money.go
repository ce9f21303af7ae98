package domain

import "github.com/shopspring/decimal"

const (
	// MoneyScale is the number of decimal places every stored amount carries
	MoneyScale = 2

	// MaxBillingDueDay bounds both the billing due day and the closing day of a card
	MaxBillingDueDay = 28

	// MaxInstallments bounds the number of installments of a single debt
	MaxInstallments = 999
)

// RoundMoney rounds an amount to MoneyScale places, half-up.
// shopspring rounds half away from zero, which equals half-up for the
// positive amounts the ledger stores.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
