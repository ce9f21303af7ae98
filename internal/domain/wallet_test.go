package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWallet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wallet  Wallet
		wantErr bool
	}{
		{
			name:    "General wallet should pass",
			wallet:  Wallet{ID: uuid.New(), Name: "Checking", Purpose: WalletPurposeGeneral, Balance: decimal.Zero},
			wantErr: false,
		},
		{
			name:    "Goal wallet should pass",
			wallet:  Wallet{ID: uuid.New(), Name: "Holidays", Purpose: WalletPurposeGoal},
			wantErr: false,
		},
		{
			name:    "Blank name should fail",
			wallet:  Wallet{ID: uuid.New(), Name: "   ", Purpose: WalletPurposeGeneral},
			wantErr: true,
		},
		{
			name:    "Unknown purpose should fail",
			wallet:  Wallet{ID: uuid.New(), Name: "Checking", Purpose: "SAVINGS"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wallet.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
