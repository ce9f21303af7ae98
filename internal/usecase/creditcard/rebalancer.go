package creditcard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/allocator"
	"github.com/simaogato/walletledger-backend/internal/usecase/invoice"
	"github.com/simaogato/walletledger-backend/internal/usecase/ledger"
)

// Rebalancer rewrites an existing installment schedule in place.
// Every method runs inside the caller's unit of work and is a no-op when the
// requested value equals the current one.
type Rebalancer struct {
	Log *logger.Logger
}

// ChangeInvoiceMonth moves the schedule so installment i falls due in month+i.
// Amounts are untouched.
func (r *Rebalancer) ChangeInvoiceMonth(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt, month domain.YearMonth) error {
	payments, err := st.Payments().ListByDebt(ctx, debt.ID)
	if err != nil {
		return err
	}
	if len(payments) == 0 || month.Contains(payments[0].DueDate) {
		return nil
	}

	card, err := st.CreditCards().GetByID(ctx, debt.CreditCardID)
	if err != nil {
		return err
	}

	for i, p := range payments {
		p.DueDate = month.AddMonths(i).DueDate(card.BillingDueDay, p.DueDate.Location())
		if err := st.Payments().Update(ctx, p); err != nil {
			return err
		}
		r.Log.DebugContext(ctx, "installment rescheduled",
			logger.FieldDebtID, debt.ID,
			logger.FieldInstallment, p.Installment,
			"due_date", p.DueDate,
		)
	}
	return nil
}

// ChangeTotalAmount re-splits the schedule over a new total with half-up
// rounding. Paid installments carry the change into their settling wallet.
func (r *Rebalancer) ChangeTotalAmount(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt, total decimal.Decimal) error {
	if debt.TotalAmount.Equal(total) {
		return nil
	}

	payments, err := st.Payments().ListByDebt(ctx, debt.ID)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		amounts, err := allocator.SplitInstallments(total, len(payments), allocator.HalfUp)
		if err != nil {
			return err
		}
		for i, p := range payments {
			if err := r.reassign(ctx, st, p, amounts[i]); err != nil {
				return err
			}
		}
	}

	debt.TotalAmount = total
	return st.Debts().Update(ctx, debt)
}

// ChangeInstallmentCount re-splits the current total over n installments.
// Shrinking deletes the tail (crediting back paid ones); growing appends
// installments one month after the last due date.
func (r *Rebalancer) ChangeInstallmentCount(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt, n int) error {
	if debt.Installments == n {
		return nil
	}
	if err := domain.ValidateInstallments(n); err != nil {
		return err
	}

	payments, err := st.Payments().ListByDebt(ctx, debt.ID)
	if err != nil {
		return err
	}
	amounts, err := allocator.SplitInstallments(debt.TotalAmount, n, allocator.HalfUp)
	if err != nil {
		return err
	}

	kept := payments
	if n < len(payments) {
		kept = payments[:n]
		for _, p := range payments[n:] {
			if err := invoice.RemovePayment(ctx, st, p); err != nil {
				return err
			}
			r.Log.DebugContext(ctx, "installment removed", logger.FieldDebtID, debt.ID, logger.FieldInstallment, p.Installment)
		}
	}

	for i, p := range kept {
		if err := r.reassign(ctx, st, p, amounts[i]); err != nil {
			return err
		}
	}

	if len(kept) < n {
		last := lastDueDate(kept, debt)
		for i := len(kept); i < n; i++ {
			offset := i - len(kept) + 1
			due := domain.YearMonthOf(last).AddMonths(offset).DueDate(last.Day(), last.Location())
			p := newPayment(debt.ID, i+1, amounts[i], due)
			if err := st.Payments().Create(ctx, p); err != nil {
				return err
			}
			r.Log.DebugContext(ctx, "installment appended",
				logger.FieldDebtID, debt.ID,
				logger.FieldInstallment, p.Installment,
				logger.FieldAmount, p.Amount.StringFixed(domain.MoneyScale),
			)
		}
	}

	debt.Installments = n
	return st.Debts().Update(ctx, debt)
}

// reassign sets a new amount on an installment. A paid installment moves its
// settling wallet by the signed difference new - old.
func (r *Rebalancer) reassign(ctx context.Context, st domain.Store, p *domain.CreditCardPayment, amount decimal.Decimal) error {
	if p.Amount.Equal(amount) {
		return nil
	}
	if p.IsPaid() {
		diff := amount.Sub(p.Amount)
		if err := ledger.ApplyBalanceDelta(ctx, st.Wallets(), *p.WalletID, diff); err != nil {
			return err
		}
	}
	p.Amount = amount
	return st.Payments().Update(ctx, p)
}

func lastDueDate(payments []*domain.CreditCardPayment, debt *domain.CreditCardDebt) time.Time {
	if len(payments) == 0 {
		return debt.RegisterDate
	}
	return payments[len(payments)-1].DueDate
}
