package creditcard

import (
	"context"
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
	"github.com/simaogato/walletledger-backend/internal/usecase/invoice"
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

var january = domain.YearMonth{Year: 2025, Month: time.January}

type fixture struct {
	store    *memory.Store
	pub      *MockPublisher
	debts    *DebtService
	cards    *CardService
	invoices *invoice.InvoiceService
	operator uuid.UUID
	card     uuid.UUID
	wallet   uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: memory.NewStore(), pub: new(MockPublisher)}
	f.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	f.debts = NewDebtService(f.store, f.pub, logger.Discard())
	f.cards = NewCardService(f.store, logger.Discard())
	f.invoices = invoice.NewInvoiceService(f.store, f.pub, logger.Discard())

	f.operator = uuid.New()
	f.wallet = uuid.New()
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		require.NoError(t, st.Operators().Create(ctx, &domain.CreditCardOperator{ID: f.operator, Name: "Visa"}))
		return st.Wallets().Create(ctx, &domain.Wallet{ID: f.wallet, Name: "Checking", Purpose: domain.WalletPurposeGeneral, Balance: dec("1000.00")})
	}))

	id, err := f.cards.AddCreditCard(context.Background(), CreditCardInput{
		Name:           "Gold",
		BillingDueDay:  10,
		ClosingDay:     3,
		MaxDebt:        dec("1000.00"),
		LastFourDigits: "4242",
		OperatorID:     f.operator,
	})
	require.NoError(t, err)
	f.card = id
	return f
}

func (f *fixture) register(t *testing.T, total string, n int) uuid.UUID {
	t.Helper()
	id, err := f.debts.RegisterDebt(context.Background(), RegisterDebtInput{
		CreditCardID: f.card,
		CategoryID:   uuid.New(),
		RegisterDate: time.Date(2024, time.December, 20, 14, 0, 0, 0, time.UTC),
		InvoiceMonth: january,
		TotalAmount:  dec(total),
		Installments: n,
		Description:  "laptop",
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) schedule(t *testing.T, debtID uuid.UUID) (*domain.CreditCardDebt, []*domain.CreditCardPayment) {
	t.Helper()
	debt, payments, err := f.debts.GetDebt(context.Background(), debtID)
	require.NoError(t, err)
	return debt, payments
}

func (f *fixture) pay(t *testing.T, month domain.YearMonth) {
	t.Helper()
	_, err := f.invoices.PayInvoice(context.Background(), invoice.PayInvoiceInput{CreditCardID: f.card, WalletID: f.wallet, Month: month})
	require.NoError(t, err)
}

func (f *fixture) walletState(t *testing.T) *domain.Wallet {
	t.Helper()
	var w *domain.Wallet
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		var err error
		w, err = st.Wallets().GetByID(ctx, f.wallet)
		return err
	}))
	return w
}

func assertAmounts(t *testing.T, payments []*domain.CreditCardPayment, want ...string) {
	t.Helper()
	require.Len(t, payments, len(want))
	for i, p := range payments {
		assert.Equal(t, i+1, p.Installment)
		assert.True(t, p.Amount.Equal(dec(want[i])), "installment %d: want %s, got %s", i+1, want[i], p.Amount)
	}
}

func assertSumInvariant(t *testing.T, debt *domain.CreditCardDebt, payments []*domain.CreditCardPayment) {
	t.Helper()
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	assert.True(t, sum.Equal(debt.TotalAmount), "installments sum to %s, debt total is %s", sum, debt.TotalAmount)
	assert.Equal(t, debt.Installments, len(payments))
}

func assertBalance(t *testing.T, f *fixture, want string) {
	t.Helper()
	got := f.walletState(t).Balance
	assert.True(t, got.Equal(dec(want)), "balance: want %s, got %s", want, got)
}
