package invoice

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

type fixture struct {
	store  *memory.Store
	svc    *InvoiceService
	pub    *MockPublisher
	card   *domain.CreditCard
	debtID uuid.UUID
	wallet uuid.UUID
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(), pub: new(MockPublisher)}
	f.svc = NewInvoiceService(f.store, f.pub, logger.Discard())
	f.svc.Now = func() time.Time { return now }

	f.card = &domain.CreditCard{
		ID:             uuid.New(),
		Name:           "Gold",
		BillingDueDay:  10,
		ClosingDay:     3,
		MaxDebt:        dec("5000"),
		LastFourDigits: "1234",
		OperatorID:     uuid.New(),
	}
	f.debtID = uuid.New()
	f.wallet = uuid.New()

	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		require.NoError(t, st.Wallets().Create(ctx, &domain.Wallet{ID: f.wallet, Name: "Checking", Purpose: domain.WalletPurposeGeneral, Balance: dec("1000.00")}))
		require.NoError(t, st.CreditCards().Create(ctx, f.card))
		return st.Debts().Create(ctx, &domain.CreditCardDebt{ID: f.debtID, CreditCardID: f.card.ID, TotalAmount: dec("100.00"), Installments: 2})
	}))
	return f
}

func (f *fixture) addPayment(t *testing.T, installment int, amount string, month domain.YearMonth) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		return st.Payments().Create(ctx, &domain.CreditCardPayment{
			ID:          id,
			DebtID:      f.debtID,
			Installment: installment,
			Amount:      dec(amount),
			DueDate:     month.DueDate(f.card.BillingDueDay, time.UTC),
		})
	}))
	return id
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	var b decimal.Decimal
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		w, err := st.Wallets().GetByID(ctx, f.wallet)
		if err != nil {
			return err
		}
		b = w.Balance
		return nil
	}))
	return b
}

func (f *fixture) payment(t *testing.T, id uuid.UUID) *domain.CreditCardPayment {
	t.Helper()
	var p *domain.CreditCardPayment
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		var err error
		p, err = st.Payments().GetByID(ctx, id)
		return err
	}))
	return p
}

func TestDeriveNextInvoiceDate(t *testing.T) {
	card := &domain.CreditCard{BillingDueDay: 10, ClosingDay: 3}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Before closing day uses current month",
			now:  time.Date(2025, time.January, 2, 8, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.January, 10, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "On closing day uses current month",
			now:  time.Date(2025, time.January, 3, 8, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.January, 10, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "After closing day uses next month",
			now:  time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.February, 10, 23, 59, 0, 0, time.UTC),
		},
		{
			name: "December rolls into next year",
			now:  time.Date(2025, time.December, 20, 8, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.January, 10, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveNextInvoiceDate(card, tt.now))
		})
	}
}

func TestStatusFor(t *testing.T) {
	next := time.Date(2025, time.February, 10, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, domain.InvoiceStatusClosed, StatusFor(next, domain.YearMonth{Year: 2025, Month: time.January}))
	assert.Equal(t, domain.InvoiceStatusOpen, StatusFor(next, domain.YearMonth{Year: 2025, Month: time.February}))
	assert.Equal(t, domain.InvoiceStatusOpen, StatusFor(next, domain.YearMonth{Year: 2025, Month: time.March}))
	assert.Equal(t, domain.InvoiceStatusClosed, StatusFor(next, domain.YearMonth{Year: 2024, Month: time.December}))
}

func TestNextInvoiceDate_UsesEarliestPendingInstallment(t *testing.T) {
	now := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	f := newFixture(t, now)
	march := domain.YearMonth{Year: 2025, Month: time.March}
	f.addPayment(t, 2, "50.00", march.AddMonths(1))
	f.addPayment(t, 1, "50.00", march)

	next, err := f.svc.NextInvoiceDate(context.Background(), f.card.ID)
	require.NoError(t, err)
	assert.Equal(t, march.DueDate(10, time.UTC), next)

	status, err := f.svc.InvoiceStatus(context.Background(), f.card.ID, domain.YearMonth{Year: 2025, Month: time.February})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusClosed, status)

	status, err = f.svc.InvoiceStatus(context.Background(), f.card.ID, march)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusOpen, status)
}

func TestNextInvoiceDate_DerivedWhenNothingPending(t *testing.T) {
	now := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	f := newFixture(t, now)

	next, err := f.svc.NextInvoiceDate(context.Background(), f.card.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 10, 23, 59, 0, 0, time.UTC), next)

	_, err = f.svc.NextInvoiceDate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPayInvoice_SingleDebitForTheBatch(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	p1 := f.addPayment(t, 1, "40.00", month)
	p2 := f.addPayment(t, 2, "60.00", month)
	later := f.addPayment(t, 3, "70.00", month.AddMonths(1))

	f.pub.On("Publish", mock.Anything, domain.TopicInvoicePaid, mock.MatchedBy(func(e domain.InvoicePaid) bool {
		return e.Total == "100.00" && len(e.PaymentIDs) == 2 && e.Month == "2025-06"
	})).Return(nil).Once()

	res, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{CreditCardID: f.card.ID, WalletID: f.wallet, Month: month})
	require.NoError(t, err)
	assert.True(t, res.Total.Equal(dec("100.00")))
	assert.ElementsMatch(t, []uuid.UUID{p1, p2}, res.PaymentIDs)

	assert.True(t, f.balance(t).Equal(dec("900.00")))
	assert.Equal(t, f.wallet, *f.payment(t, p1).WalletID)
	assert.Equal(t, f.wallet, *f.payment(t, p2).WalletID)
	assert.False(t, f.payment(t, later).IsPaid())

	// deleting one settled installment credits back only its own amount
	require.NoError(t, f.svc.DeletePayment(context.Background(), p2))
	assert.True(t, f.balance(t).Equal(dec("960.00")))
	f.pub.AssertExpectations(t)
}

func TestPayInvoice_EmptyBatchChangesNothing(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}

	res, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{CreditCardID: f.card.ID, WalletID: f.wallet, Month: month})
	require.NoError(t, err)
	assert.True(t, res.Total.IsZero())
	assert.Empty(t, res.PaymentIDs)
	assert.True(t, f.balance(t).Equal(dec("1000.00")))
	f.pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayInvoice_AlreadyPaidInstallmentsAreSkipped(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	f.addPayment(t, 1, "40.00", month)
	f.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	in := PayInvoiceInput{CreditCardID: f.card.ID, WalletID: f.wallet, Month: month}
	_, err := f.svc.PayInvoice(context.Background(), in)
	require.NoError(t, err)
	_, err = f.svc.PayInvoice(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, f.balance(t).Equal(dec("960.00")))
}

func TestPayInvoice_UnknownReferences(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}

	_, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{CreditCardID: uuid.New(), WalletID: f.wallet, Month: month})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.PayInvoice(context.Background(), PayInvoiceInput{CreditCardID: f.card.ID, WalletID: uuid.New(), Month: month})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePayment_PendingHasNoBalanceEffect(t *testing.T) {
	f := newFixture(t, time.Now())
	id := f.addPayment(t, 1, "40.00", domain.YearMonth{Year: 2025, Month: time.June})

	require.NoError(t, f.svc.DeletePayment(context.Background(), id))
	assert.True(t, f.balance(t).Equal(dec("1000.00")))
	assert.ErrorIs(t, f.svc.DeletePayment(context.Background(), id), domain.ErrNotFound)
}

func TestInvoiceAmount_CountsPaidAndPending(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	f.addPayment(t, 1, "40.00", month)
	f.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	_, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{CreditCardID: f.card.ID, WalletID: f.wallet, Month: month})
	require.NoError(t, err)
	f.addPayment(t, 2, "60.00", month)

	amount, err := f.svc.InvoiceAmount(context.Background(), f.card.ID, month)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("100.00")))

	_, err = f.svc.InvoiceAmount(context.Background(), uuid.New(), month)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
