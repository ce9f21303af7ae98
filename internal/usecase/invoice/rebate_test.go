package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func (f *fixture) setRebate(t *testing.T, amount string) {
	t.Helper()
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, f.card.ID)
		if err != nil {
			return err
		}
		card.AvailableRebate = dec(amount)
		return st.CreditCards().Update(ctx, card)
	}))
}

func (f *fixture) rebate(t *testing.T) decimal.Decimal {
	t.Helper()
	var r decimal.Decimal
	require.NoError(t, f.store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, f.card.ID)
		if err != nil {
			return err
		}
		r = card.AvailableRebate
		return nil
	}))
	return r
}

func TestPayInvoice_RebateSplitsProportionally(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	p1 := f.addPayment(t, 1, "40.00", month)
	p2 := f.addPayment(t, 2, "60.00", month)
	f.setRebate(t, "25.00")

	f.pub.On("Publish", mock.Anything, domain.TopicInvoicePaid, mock.MatchedBy(func(e domain.InvoicePaid) bool {
		return e.Total == "100.00" && e.Rebate == "10.00"
	})).Return(nil).Once()

	res, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{
		CreditCardID: f.card.ID, WalletID: f.wallet, Month: month, Rebate: dec("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Total.Equal(dec("100.00")))
	assert.True(t, res.Rebate.Equal(dec("10.00")))

	assert.True(t, f.payment(t, p1).RebateUsed.Equal(dec("4.00")))
	assert.True(t, f.payment(t, p2).RebateUsed.Equal(dec("6.00")))
	assert.True(t, f.balance(t).Equal(dec("910.00")), "wallet pays the sum minus the rebate once")
	assert.True(t, f.rebate(t).Equal(dec("15.00")))

	// deleting a rebated installment credits back what the wallet paid and returns the rebate
	require.NoError(t, f.svc.DeletePayment(context.Background(), p2))
	assert.True(t, f.balance(t).Equal(dec("964.00")))
	assert.True(t, f.rebate(t).Equal(dec("21.00")))
	f.pub.AssertExpectations(t)
}

func TestPayInvoice_LastInstallmentAbsorbsRebateRemainder(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	ids := []uuid.UUID{
		f.addPayment(t, 1, "33.34", month),
		f.addPayment(t, 2, "33.33", month),
		f.addPayment(t, 3, "33.33", month),
	}
	f.setRebate(t, "10.00")
	f.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{
		CreditCardID: f.card.ID, WalletID: f.wallet, Month: month, Rebate: dec("10.00"),
	})
	require.NoError(t, err)

	want := []string{"3.33", "3.33", "3.34"}
	for i, id := range ids {
		got := f.payment(t, id).RebateUsed
		assert.True(t, got.Equal(dec(want[i])), "installment %d: want %s, got %s", i+1, want[i], got)
	}
	assert.True(t, f.balance(t).Equal(dec("910.00")))
	assert.True(t, f.rebate(t).IsZero())
}

func TestPayInvoice_RebateCappedAtBatchTotal(t *testing.T) {
	f := newFixture(t, time.Now())
	month := domain.YearMonth{Year: 2025, Month: time.June}
	p1 := f.addPayment(t, 1, "40.00", month)
	p2 := f.addPayment(t, 2, "60.00", month)
	f.setRebate(t, "150.00")
	f.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	res, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{
		CreditCardID: f.card.ID, WalletID: f.wallet, Month: month, Rebate: dec("150.00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Rebate.Equal(dec("100.00")))

	assert.True(t, f.payment(t, p1).RebateUsed.Equal(dec("40.00")))
	assert.True(t, f.payment(t, p2).RebateUsed.Equal(dec("60.00")))
	assert.True(t, f.balance(t).Equal(dec("1000.00")), "a fully rebated invoice costs the wallet nothing")
	assert.True(t, f.rebate(t).Equal(dec("50.00")), "only the capped rebate is spent")
}

func TestPayInvoice_RejectsInvalidRebate(t *testing.T) {
	month := domain.YearMonth{Year: 2025, Month: time.June}

	tests := []struct {
		name    string
		rebate  string
		wantErr error
	}{
		{name: "negative rebate", rebate: "-0.01", wantErr: domain.ErrValidation},
		{name: "above available rebate", rebate: "5.01", wantErr: domain.ErrInsufficientRebate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Now())
			p := f.addPayment(t, 1, "40.00", month)
			f.setRebate(t, "5.00")

			_, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{
				CreditCardID: f.card.ID, WalletID: f.wallet, Month: month, Rebate: dec(tt.rebate),
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, f.payment(t, p).IsPaid())
			assert.True(t, f.balance(t).Equal(dec("1000.00")))
			assert.True(t, f.rebate(t).Equal(dec("5.00")))
		})
	}
}

func TestPayInvoice_EmptyBatchKeepsRebate(t *testing.T) {
	f := newFixture(t, time.Now())
	f.setRebate(t, "5.00")

	res, err := f.svc.PayInvoice(context.Background(), PayInvoiceInput{
		CreditCardID: f.card.ID, WalletID: f.wallet, Month: domain.YearMonth{Year: 2025, Month: time.June}, Rebate: dec("5.00"),
	})
	require.NoError(t, err)
	assert.True(t, res.Rebate.IsZero())
	assert.True(t, f.rebate(t).Equal(dec("5.00")))
}

func TestSplitRebate(t *testing.T) {
	batch := func(amounts ...string) []*domain.CreditCardPayment {
		out := make([]*domain.CreditCardPayment, len(amounts))
		for i, a := range amounts {
			out[i] = &domain.CreditCardPayment{Amount: dec(a)}
		}
		return out
	}

	tests := []struct {
		name    string
		amounts []string
		total   string
		rebate  string
		want    []string
	}{
		{name: "no rebate", amounts: []string{"40.00", "60.00"}, total: "100.00", rebate: "0", want: []string{"0", "0"}},
		{name: "single payment takes it all", amounts: []string{"40.00"}, total: "40.00", rebate: "7.77", want: []string{"7.77"}},
		{name: "even split", amounts: []string{"50.00", "50.00"}, total: "100.00", rebate: "0.01", want: []string{"0.01", "0.00"}},
		{name: "thirds", amounts: []string{"10.00", "10.00", "10.00"}, total: "30.00", rebate: "1.00", want: []string{"0.33", "0.33", "0.34"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRebate(batch(tt.amounts...), dec(tt.total), dec(tt.rebate))
			require.Len(t, got, len(tt.want))
			sum := decimal.Zero
			for i, share := range got {
				assert.True(t, share.Equal(dec(tt.want[i])), "share %d: want %s, got %s", i, tt.want[i], share)
				sum = sum.Add(share)
			}
			assert.True(t, sum.Equal(dec(tt.rebate)))
		})
	}
}
