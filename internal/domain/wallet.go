package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletPurpose tags what a wallet is used for
type WalletPurpose string

const (
	WalletPurposeGeneral WalletPurpose = "GENERAL"
	WalletPurposeGoal    WalletPurpose = "GOAL"
)

// Wallet is a named container of money.
// Balance is a cached aggregate mutated incrementally by the ledger, never
// recomputed from history.
type Wallet struct {
	ID       uuid.UUID
	Name     string
	Purpose  WalletPurpose
	Balance  decimal.Decimal
	Archived bool
	Version  int64
}

// Validate ensures the wallet adheres to domain rules
func (w *Wallet) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return Validationf("wallet name cannot be empty")
	}
	switch w.Purpose {
	case WalletPurposeGeneral, WalletPurposeGoal:
	default:
		return Validationf("wallet purpose must be GENERAL or GOAL, got %q", w.Purpose)
	}
	return nil
}
