package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// ApplyBalanceDelta adds delta to the wallet's cached balance.
// It is the only path through which any component mutates a balance.
// A zero delta performs no read and no write.
func ApplyBalanceDelta(ctx context.Context, wallets domain.WalletRepository, walletID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	wallet, err := wallets.GetByID(ctx, walletID)
	if err != nil {
		return err
	}

	wallet.Balance = wallet.Balance.Add(delta)
	if err := wallets.Update(ctx, wallet); err != nil {
		return fmt.Errorf("failed to update balance of wallet %s: %w", walletID, err)
	}
	return nil
}
