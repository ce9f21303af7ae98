package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves money between two wallets.
// It has no pending state: its two-sided effect is applied when recorded.
type Transfer struct {
	ID               uuid.UUID
	SenderWalletID   uuid.UUID
	ReceiverWalletID uuid.UUID
	CategoryID       *uuid.UUID
	Amount           decimal.Decimal
	Date             time.Time
	Description      string
}

// Validate ensures the transfer adheres to domain rules
func (t *Transfer) Validate() error {
	if t.SenderWalletID == t.ReceiverWalletID {
		return ErrSameEndpoint
	}
	if !t.Amount.IsPositive() {
		return Validationf("amount must be greater than zero")
	}
	return nil
}
