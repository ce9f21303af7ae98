package creditcard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func validCardInput(operator uuid.UUID) CreditCardInput {
	return CreditCardInput{
		Name:           "Platinum",
		BillingDueDay:  5,
		ClosingDay:     28,
		MaxDebt:        dec("2500.00"),
		LastFourDigits: "1234",
		OperatorID:     operator,
	}
}

func TestAddCreditCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(in *CreditCardInput)
		wantErr error
	}{
		{name: "valid", mutate: func(in *CreditCardInput) {}},
		{name: "duplicate name after trimming", mutate: func(in *CreditCardInput) { in.Name = "  Gold " }, wantErr: domain.ErrConflict},
		{name: "blank name", mutate: func(in *CreditCardInput) { in.Name = "   " }, wantErr: domain.ErrValidation},
		{name: "due day above 28", mutate: func(in *CreditCardInput) { in.BillingDueDay = 29 }, wantErr: domain.ErrValidation},
		{name: "closing day zero", mutate: func(in *CreditCardInput) { in.ClosingDay = 0 }, wantErr: domain.ErrValidation},
		{name: "zero max debt", mutate: func(in *CreditCardInput) { in.MaxDebt = dec("0") }, wantErr: domain.ErrValidation},
		{name: "bad last four digits", mutate: func(in *CreditCardInput) { in.LastFourDigits = "12a4" }, wantErr: domain.ErrValidation},
		{name: "unknown operator", mutate: func(in *CreditCardInput) {
			in.Name = "Other"
			in.OperatorID = uuid.New()
		}, wantErr: domain.ErrNotFound},
		{name: "unknown default wallet", mutate: func(in *CreditCardInput) {
			w := uuid.New()
			in.Name = "Other"
			in.DefaultBillingWalletID = &w
		}, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCardInput(f.operator)
			tt.mutate(&in)

			id, err := f.cards.AddCreditCard(ctx, in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)

			card, err := f.cards.GetCreditCard(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "Platinum", card.Name)
			assert.False(t, card.Archived)
		})
	}

	cards, err := f.cards.ListCreditCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Gold", cards[0].Name)
	assert.Equal(t, "Platinum", cards[1].Name)
}

func TestUpdateCreditCard_MovesUpcomingPendingInstallments(t *testing.T) {
	f := newFixture(t)
	f.cards.Now = func() time.Time { return time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC) }
	id := f.register(t, "90.00", 3)

	in := validCardInput(f.operator)
	in.Name = "Gold"
	in.BillingDueDay = 15
	in.MaxDebt = dec("1000.00")
	require.NoError(t, f.cards.UpdateCreditCard(context.Background(), f.card, in))

	_, payments := f.schedule(t, id)
	require.Len(t, payments, 3)
	assert.Equal(t, 10, payments[0].DueDate.Day(), "overdue installment keeps its date")
	assert.Equal(t, 15, payments[1].DueDate.Day())
	assert.Equal(t, 15, payments[2].DueDate.Day())
	assert.Equal(t, time.March, payments[2].DueDate.Month())

	card, err := f.cards.GetCreditCard(context.Background(), f.card)
	require.NoError(t, err)
	assert.Equal(t, 15, card.BillingDueDay)
	assert.Equal(t, "1234", card.LastFourDigits)
}

func TestUpdateCreditCard_PaidInstallmentsStay(t *testing.T) {
	f := newFixture(t)
	f.cards.Now = func() time.Time { return time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC) }
	id := f.register(t, "90.00", 2)
	f.pay(t, january)

	in := validCardInput(f.operator)
	in.Name = "Gold"
	in.BillingDueDay = 20
	require.NoError(t, f.cards.UpdateCreditCard(context.Background(), f.card, in))

	_, payments := f.schedule(t, id)
	assert.Equal(t, 10, payments[0].DueDate.Day())
	assert.Equal(t, 20, payments[1].DueDate.Day())
}

func TestUpdateCreditCard_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.cards.AddCreditCard(ctx, validCardInput(f.operator))
	require.NoError(t, err)

	in := validCardInput(f.operator)
	assert.ErrorIs(t, f.cards.UpdateCreditCard(ctx, f.card, in), domain.ErrConflict)
	assert.ErrorIs(t, f.cards.UpdateCreditCard(ctx, uuid.New(), in), domain.ErrNotFound)

	in.LastFourDigits = "123"
	assert.ErrorIs(t, f.cards.UpdateCreditCard(ctx, f.card, in), domain.ErrValidation)
}

func TestArchiveCreditCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "100.00", 1)

	err := f.cards.ArchiveCreditCard(ctx, f.card)
	assert.ErrorIs(t, err, domain.ErrConflict)

	f.pay(t, january)
	require.NoError(t, f.cards.ArchiveCreditCard(ctx, f.card))
	card, err := f.cards.GetCreditCard(ctx, f.card)
	require.NoError(t, err)
	assert.True(t, card.Archived)

	// updates keep the archive flag
	in := validCardInput(f.operator)
	in.Name = "Gold"
	require.NoError(t, f.cards.UpdateCreditCard(ctx, f.card, in))
	card, err = f.cards.GetCreditCard(ctx, f.card)
	require.NoError(t, err)
	assert.True(t, card.Archived)

	require.NoError(t, f.cards.UnarchiveCreditCard(ctx, f.card))
	card, err = f.cards.GetCreditCard(ctx, f.card)
	require.NoError(t, err)
	assert.False(t, card.Archived)

	assert.ErrorIs(t, f.cards.ArchiveCreditCard(ctx, uuid.New()), domain.ErrNotFound)
}

func TestDeleteCreditCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	debtID := f.register(t, "100.00", 2)

	assert.ErrorIs(t, f.cards.DeleteCreditCard(ctx, f.card), domain.ErrConflict)

	require.NoError(t, f.debts.DeleteDebt(ctx, debtID))
	require.NoError(t, f.cards.DeleteCreditCard(ctx, f.card))

	_, err := f.cards.GetCreditCard(ctx, f.card)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.cards.DeleteCreditCard(ctx, f.card), domain.ErrNotFound)
}

func TestAvailableCredit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	available, err := f.cards.AvailableCredit(ctx, f.card)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("1000.00")))

	f.register(t, "250.50", 2)
	available, err = f.cards.AvailableCredit(ctx, f.card)
	require.NoError(t, err)
	assert.True(t, available.Equal(dec("749.50")))

	_, err = f.cards.AvailableCredit(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOperators(t *testing.T) {
	f := newFixture(t)

	operators, err := f.cards.ListOperators(context.Background())
	require.NoError(t, err)
	require.Len(t, operators, 1)
	assert.Equal(t, "Visa", operators[0].Name)
}
