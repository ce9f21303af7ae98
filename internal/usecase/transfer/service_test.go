package transfer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// MockPublisher is a mock implementation of EventPublisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, event any) error {
	return m.Called(ctx, topic, event).Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedWallet(t *testing.T, store *memory.Store, balance string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		return st.Wallets().Create(ctx, &domain.Wallet{ID: id, Name: id.String(), Purpose: domain.WalletPurposeGeneral, Balance: dec(balance)})
	}))
	return id
}

func assertBalance(t *testing.T, store *memory.Store, id uuid.UUID, want string) {
	t.Helper()
	require.NoError(t, store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		w, err := st.Wallets().GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, w.Balance.Equal(dec(want)), "balance: want %s, got %s", want, w.Balance)
		return nil
	}))
}

func newTestService(t *testing.T) (*TransferService, *memory.Store, *MockPublisher) {
	t.Helper()
	store := memory.NewStore()
	pub := new(MockPublisher)
	return NewTransferService(store, pub, logger.Discard()), store, pub
}

func input(from, to uuid.UUID, amount string) TransferInput {
	return TransferInput{
		SenderWalletID:   from,
		ReceiverWalletID: to,
		Amount:           dec(amount),
		Date:             time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC),
		Description:      "savings",
	}
}

func TestTransfer_MovesMoneyAndPublishes(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "20.00")

	pub.On("Publish", mock.Anything, domain.TopicTransferCompleted, mock.MatchedBy(func(e domain.TransferCompleted) bool {
		return e.SenderWalletID == a.String() && e.ReceiverWalletID == b.String() && e.Amount == "30.01"
	})).Return(nil).Once()

	id, err := svc.Transfer(context.Background(), input(a, b, "30.005"))
	require.NoError(t, err)

	assertBalance(t, store, a, "69.99")
	assertBalance(t, store, b, "50.01")

	tr, err := svc.GetTransfer(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, tr.Amount.Equal(dec("30.01")))
	pub.AssertExpectations(t)
}

func TestTransfer_ExactBalanceIsAllowed(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "10.00")
	b := seedWallet(t, store, "0")
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Transfer(context.Background(), input(a, b, "10.00"))
	require.NoError(t, err)
	assertBalance(t, store, a, "0")
	assertBalance(t, store, b, "10.00")
}

func TestTransfer_RejectedTransfersMutateNothing(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "20.00")
	ctx := context.Background()

	tests := []struct {
		name    string
		in      TransferInput
		wantErr error
	}{
		{name: "same endpoint", in: input(a, a, "10"), wantErr: domain.ErrSameEndpoint},
		{name: "zero amount", in: input(a, b, "0"), wantErr: domain.ErrValidation},
		{name: "negative amount", in: input(a, b, "-5"), wantErr: domain.ErrValidation},
		{name: "insufficient funds", in: input(a, b, "100.01"), wantErr: domain.ErrInsufficientFunds},
		{name: "missing sender", in: input(uuid.New(), b, "1"), wantErr: domain.ErrNotFound},
		{name: "missing receiver", in: input(a, uuid.New(), "1"), wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transfer(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assertBalance(t, store, a, "100.00")
			assertBalance(t, store, b, "20.00")
		})
	}
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransfer_PublishFailureIsNotReturned(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "0")
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := svc.Transfer(context.Background(), input(a, b, "40"))
	require.NoError(t, err)
	assertBalance(t, store, a, "60.00")
}

func TestUpdateTransfer(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "0")
	c := seedWallet(t, store, "0")
	ctx := context.Background()
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	id, err := svc.Transfer(ctx, input(a, b, "40"))
	require.NoError(t, err)

	// redirect to C with a larger amount: the old effect is reverted first,
	// so the whole 100 is available again
	require.NoError(t, svc.UpdateTransfer(ctx, UpdateTransferInput{ID: id, TransferInput: input(a, c, "100")}))
	assertBalance(t, store, a, "0")
	assertBalance(t, store, b, "0")
	assertBalance(t, store, c, "100.00")

	err = svc.UpdateTransfer(ctx, UpdateTransferInput{ID: id, TransferInput: input(a, c, "100.01")})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assertBalance(t, store, a, "0")
	assertBalance(t, store, c, "100.00")

	err = svc.UpdateTransfer(ctx, UpdateTransferInput{ID: uuid.New(), TransferInput: input(a, c, "1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteTransfer(t *testing.T) {
	svc, store, pub := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "0")
	ctx := context.Background()
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	id, err := svc.Transfer(ctx, input(a, b, "25"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransfer(ctx, id))
	assertBalance(t, store, a, "100.00")
	assertBalance(t, store, b, "0")

	_, err = svc.GetTransfer(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteTransfer(ctx, id), domain.ErrNotFound)
}
