package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind is the direction of a ledger entry
type EntryKind string

const (
	EntryKindIncome  EntryKind = "INCOME"
	EntryKindExpense EntryKind = "EXPENSE"
)

// EntryStatus tells whether an entry affects its wallet balance
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusConfirmed EntryStatus = "CONFIRMED"
)

// Sign returns +1 for income and -1 for expense.
// Any other kind is a programming defect.
func (k EntryKind) Sign() (decimal.Decimal, error) {
	switch k {
	case EntryKindIncome:
		return decimal.NewFromInt(1), nil
	case EntryKindExpense:
		return decimal.NewFromInt(-1), nil
	default:
		return decimal.Zero, FatalStatef("unknown entry kind %q", k)
	}
}

// IsConfirmed reports whether the status carries a balance effect.
// Any other status is a programming defect.
func (s EntryStatus) IsConfirmed() (bool, error) {
	switch s {
	case EntryStatusConfirmed:
		return true, nil
	case EntryStatusPending:
		return false, nil
	default:
		return false, FatalStatef("unknown entry status %q", s)
	}
}

// LedgerEntry is a single income or expense attached to a wallet
type LedgerEntry struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Kind        EntryKind
	Status      EntryStatus
	Amount      decimal.Decimal // always positive, rounded to MoneyScale
	Date        time.Time
	Description string
	Version     int64
}

// SignedAmount returns the amount with the sign of its kind
func (e *LedgerEntry) SignedAmount() (decimal.Decimal, error) {
	sign, err := e.Kind.Sign()
	if err != nil {
		return decimal.Zero, err
	}
	return e.Amount.Mul(sign), nil
}

// BalanceEffect returns the delta this entry currently contributes to its
// wallet: the signed amount when confirmed, zero otherwise.
func (e *LedgerEntry) BalanceEffect() (decimal.Decimal, error) {
	signed, err := e.SignedAmount()
	if err != nil {
		return decimal.Zero, err
	}
	confirmed, err := e.Status.IsConfirmed()
	if err != nil {
		return decimal.Zero, err
	}
	if !confirmed {
		return decimal.Zero, nil
	}
	return signed, nil
}

// Validate ensures the entry adheres to domain rules
func (e *LedgerEntry) Validate() error {
	if !e.Amount.IsPositive() {
		return Validationf("amount must be greater than zero")
	}
	if e.WalletID == uuid.Nil {
		return Validationf("wallet id is required")
	}
	if _, err := e.Kind.Sign(); err != nil {
		return err
	}
	if _, err := e.Status.IsConfirmed(); err != nil {
		return err
	}
	return nil
}
