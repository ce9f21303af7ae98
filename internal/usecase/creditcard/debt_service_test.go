package creditcard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func TestRegisterDebt_HundredInThree(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "100.00", 3)

	debt, payments := f.schedule(t, id)
	assertAmounts(t, payments, "33.34", "33.33", "33.33")
	assertSumInvariant(t, debt, payments)

	for i, p := range payments {
		assert.Equal(t, january.AddMonths(i).DueDate(10, time.UTC), p.DueDate)
		assert.False(t, p.IsPaid())
	}
}

func TestRegisterDebt_FloorRounding(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "100.00", 6)

	debt, payments := f.schedule(t, id)
	assertAmounts(t, payments, "16.70", "16.66", "16.66", "16.66", "16.66", "16.66")
	assertSumInvariant(t, debt, payments)
}

func TestRegisterDebt_ZeroTotalIsAllowed(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "0", 2)

	debt, payments := f.schedule(t, id)
	assertAmounts(t, payments, "0", "0")
	assertSumInvariant(t, debt, payments)
}

func TestRegisterDebt_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.register(t, "120.00", 4)

	f.pub.AssertCalled(t, "Publish", mock.Anything, domain.TopicDebtRegistered, mock.MatchedBy(func(e domain.DebtRegistered) bool {
		return e.TotalAmount == "120.00" && e.Installments == 4 && e.InvoiceMonth == "2025-01"
	}))
}

func TestRegisterDebt_CreditLimit(t *testing.T) {
	f := newFixture(t)
	f.register(t, "600.00", 3)

	available, err := f.cards.AvailableCredit(context.Background(), f.card)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("400.00")))

	_, err = f.debts.RegisterDebt(context.Background(), RegisterDebtInput{
		CreditCardID: f.card, InvoiceMonth: january, TotalAmount: dec("400.01"), Installments: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)

	// exactly the available credit is accepted
	f.register(t, "400.00", 1)

	// paying an invoice frees credit again
	f.pay(t, january)
	available, err = f.cards.AvailableCredit(context.Background(), f.card)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("600.00")))
}

func TestRegisterDebt_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		in      RegisterDebtInput
		wantErr error
	}{
		{name: "negative total", in: RegisterDebtInput{CreditCardID: f.card, TotalAmount: dec("-1"), Installments: 1}, wantErr: domain.ErrValidation},
		{name: "zero installments", in: RegisterDebtInput{CreditCardID: f.card, TotalAmount: dec("1"), Installments: 0}, wantErr: domain.ErrValidation},
		{name: "too many installments", in: RegisterDebtInput{CreditCardID: f.card, TotalAmount: dec("1"), Installments: domain.MaxInstallments + 1}, wantErr: domain.ErrValidation},
		{name: "unknown card", in: RegisterDebtInput{CreditCardID: uuid.New(), TotalAmount: dec("1"), Installments: 1}, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.InvoiceMonth = january
			_, err := f.debts.RegisterDebt(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteDebt_CreditsBackPaidInstallments(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "90.00", 3)
	f.pay(t, january)
	f.pay(t, january.AddMonths(1))
	assertBalance(t, f, "940.00")

	require.NoError(t, f.debts.DeleteDebt(context.Background(), id))
	assertBalance(t, f, "1000.00")

	_, _, err := f.debts.GetDebt(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	available, err := f.cards.AvailableCredit(context.Background(), f.card)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("1000.00")))

	assert.ErrorIs(t, f.debts.DeleteDebt(context.Background(), id), domain.ErrNotFound)
}
