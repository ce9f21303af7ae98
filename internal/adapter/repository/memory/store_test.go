package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func TestStore_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	w := &domain.Wallet{ID: uuid.New(), Name: "Checking", Purpose: domain.WalletPurposeGeneral, Balance: decimal.NewFromInt(10)}

	err := s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		return st.Wallets().Create(ctx, w)
	})
	require.NoError(t, err)

	err = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		got, err := st.Wallets().GetByID(ctx, w.ID)
		require.NoError(t, err)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(10)))
		return nil
	})
	require.NoError(t, err)
}

func TestStore_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	boom := errors.New("boom")

	err := s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		require.NoError(t, st.Wallets().Create(ctx, &domain.Wallet{ID: uuid.New(), Name: "Ghost", Purpose: domain.WalletPurposeGeneral}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		exists, err := st.Wallets().ExistsByName(ctx, "Ghost")
		require.NoError(t, err)
		assert.False(t, exists)
		return nil
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id := uuid.New()

	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		return st.Wallets().Create(ctx, &domain.Wallet{ID: id, Name: "Checking", Purpose: domain.WalletPurposeGeneral, Balance: decimal.NewFromInt(5)})
	})

	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		got, _ := st.Wallets().GetByID(ctx, id)
		got.Balance = decimal.NewFromInt(999)
		again, _ := st.Wallets().GetByID(ctx, id)
		assert.True(t, again.Balance.Equal(decimal.NewFromInt(5)))
		return nil
	})
}

func TestWalletRepo_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	id := uuid.New()

	err := s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		require.NoError(t, st.Wallets().Create(ctx, &domain.Wallet{ID: id, Name: "Checking", Purpose: domain.WalletPurposeGeneral}))

		first, _ := st.Wallets().GetByID(ctx, id)
		stale, _ := st.Wallets().GetByID(ctx, id)

		first.Balance = decimal.NewFromInt(1)
		require.NoError(t, st.Wallets().Update(ctx, first))
		assert.Equal(t, int64(1), first.Version)

		stale.Balance = decimal.NewFromInt(2)
		err := st.Wallets().Update(ctx, stale)
		assert.ErrorIs(t, err, domain.ErrConflict)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		_, err := st.Wallets().GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = st.Payments().GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, st.Debts().Delete(ctx, uuid.New()), domain.ErrNotFound)
		return nil
	})
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewStore().Do(ctx, func(ctx context.Context, st domain.Store) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPaymentRepo_AggregateQueries(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cardID, otherCardID := uuid.New(), uuid.New()
	debtID, otherDebtID := uuid.New(), uuid.New()
	walletID := uuid.New()
	march := domain.YearMonth{Year: 2025, Month: time.March}

	err := s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		require.NoError(t, st.Debts().Create(ctx, &domain.CreditCardDebt{ID: debtID, CreditCardID: cardID}))
		require.NoError(t, st.Debts().Create(ctx, &domain.CreditCardDebt{ID: otherDebtID, CreditCardID: otherCardID}))

		add := func(debt uuid.UUID, installment int, amount string, due domain.YearMonth, paid bool) {
			p := &domain.CreditCardPayment{
				ID:          uuid.New(),
				DebtID:      debt,
				Installment: installment,
				Amount:      decimal.RequireFromString(amount),
				DueDate:     due.DueDate(10, time.UTC),
			}
			if paid {
				p.WalletID = &walletID
			}
			require.NoError(t, st.Payments().Create(ctx, p))
		}
		add(debtID, 2, "20.00", march.AddMonths(1), false)
		add(debtID, 1, "30.00", march, false)
		add(debtID, 3, "5.00", march, true)
		add(otherDebtID, 1, "100.00", march, false)
		return nil
	})
	require.NoError(t, err)

	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		payments := st.Payments()

		byDebt, err := payments.ListByDebt(ctx, debtID)
		require.NoError(t, err)
		require.Len(t, byDebt, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{byDebt[0].Installment, byDebt[1].Installment, byDebt[2].Installment})

		pending, err := payments.ListPendingByCardAndMonth(ctx, cardID, march)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, 1, pending[0].Installment)

		sumPending, _ := payments.SumPendingByCard(ctx, cardID)
		assert.True(t, sumPending.Equal(decimal.RequireFromString("50.00")))

		sumMarch, _ := payments.SumByCardAndMonth(ctx, cardID, march)
		assert.True(t, sumMarch.Equal(decimal.RequireFromString("35.00")))

		all, _ := payments.SumPending(ctx)
		assert.True(t, all.Equal(decimal.RequireFromString("150.00")))

		n, _ := payments.CountPendingByCard(ctx, cardID)
		assert.Equal(t, 2, n)

		earliest, _ := payments.EarliestPendingDueDate(ctx, cardID)
		require.NotNil(t, earliest)
		assert.Equal(t, march.DueDate(10, time.UTC), *earliest)

		none, _ := payments.EarliestPendingDueDate(ctx, uuid.New())
		assert.Nil(t, none)

		from, _ := payments.ListPendingByCardFrom(ctx, cardID, march.AddMonths(1).DueDate(1, time.UTC))
		require.Len(t, from, 1)
		assert.Equal(t, 2, from[0].Installment)
		return nil
	})
}

func TestCreditRepo_ListByCardOrdersByDate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cardID := uuid.New()
	later := &domain.CreditCardCredit{ID: uuid.New(), CreditCardID: cardID, Type: domain.CreditTypeRefund,
		Amount: decimal.NewFromInt(5), Date: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}
	earlier := &domain.CreditCardCredit{ID: uuid.New(), CreditCardID: cardID, Type: domain.CreditTypeCashback,
		Amount: decimal.NewFromInt(3), Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)}
	other := &domain.CreditCardCredit{ID: uuid.New(), CreditCardID: uuid.New(), Type: domain.CreditTypeCashback,
		Amount: decimal.NewFromInt(1)}

	err := s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		for _, c := range []*domain.CreditCardCredit{later, earlier, other} {
			require.NoError(t, st.Credits().Create(ctx, c))
		}
		return nil
	})
	require.NoError(t, err)

	_ = s.Do(ctx, func(ctx context.Context, st domain.Store) error {
		got, err := st.Credits().ListByCard(ctx, cardID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, earlier.ID, got[0].ID)
		assert.Equal(t, later.ID, got[1].ID)

		n, err := st.Credits().CountByCard(ctx, cardID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = st.Credits().GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
		return nil
	})
}
