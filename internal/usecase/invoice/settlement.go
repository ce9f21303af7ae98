package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/ledger"
)

// PayInvoiceInput represents the input for settling a card's monthly invoice.
// Rebate is the part of the card's available rebate to spend on the batch; zero spends none.
type PayInvoiceInput struct {
	CreditCardID uuid.UUID
	WalletID     uuid.UUID
	Month        domain.YearMonth
	Rebate       decimal.Decimal
}

// PayInvoiceResult describes a settled batch. The wallet was debited by Total minus Rebate.
type PayInvoiceResult struct {
	Total      decimal.Decimal
	Rebate     decimal.Decimal
	PaymentIDs []uuid.UUID
}

// PayInvoice settles every pending installment of the card due in the month.
// Logic:
//  1. Ensure the card and the wallet exist and the card holds the requested rebate
//  2. Collect the pending installments due in the month; an empty batch changes nothing
//  3. Sum their amounts once and cap the rebate at that sum
//  4. Mark each installment as settled by the wallet with its share of the rebate
//  5. Debit the wallet by the sum minus the rebate in a single balance mutation
//  6. Take the spent rebate off the card
func (s *InvoiceService) PayInvoice(ctx context.Context, input PayInvoiceInput) (*PayInvoiceResult, error) {
	rebate := domain.RoundMoney(input.Rebate)
	if rebate.IsNegative() {
		return nil, domain.Validationf("rebate cannot be negative")
	}
	result := &PayInvoiceResult{Total: decimal.Zero, Rebate: decimal.Zero}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, input.CreditCardID)
		if err != nil {
			return err
		}
		if _, err := st.Wallets().GetByID(ctx, input.WalletID); err != nil {
			return err
		}
		if card.AvailableRebate.LessThan(rebate) {
			return fmt.Errorf("%w: credit card %s has %s available, %s requested",
				domain.ErrInsufficientRebate, card.ID,
				card.AvailableRebate.StringFixed(domain.MoneyScale), rebate.StringFixed(domain.MoneyScale))
		}

		pending, err := st.Payments().ListPendingByCardAndMonth(ctx, input.CreditCardID, input.Month)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		total := decimal.Zero
		for _, p := range pending {
			total = total.Add(p.Amount)
		}
		if rebate.GreaterThan(total) {
			rebate = total
		}

		shares := SplitRebate(pending, total, rebate)
		for i, p := range pending {
			walletID := input.WalletID
			p.WalletID = &walletID
			p.RebateUsed = shares[i]
			if err := st.Payments().Update(ctx, p); err != nil {
				return err
			}
			result.PaymentIDs = append(result.PaymentIDs, p.ID)
		}

		result.Total = total
		result.Rebate = rebate
		if err := ledger.ApplyBalanceDelta(ctx, st.Wallets(), input.WalletID, total.Sub(rebate).Neg()); err != nil {
			return err
		}
		if rebate.IsZero() {
			return nil
		}
		if err := card.AdjustRebate(rebate.Neg()); err != nil {
			return err
		}
		return st.CreditCards().Update(ctx, card)
	})
	if err != nil {
		return nil, err
	}

	if len(result.PaymentIDs) == 0 {
		s.Log.InfoContext(ctx, "no pending installments to pay",
			logger.FieldCardID, input.CreditCardID,
			logger.FieldMonth, input.Month.String(),
		)
		return result, nil
	}

	s.Log.InfoContext(ctx, "invoice paid",
		logger.FieldCardID, input.CreditCardID,
		logger.FieldWalletID, input.WalletID,
		logger.FieldMonth, input.Month.String(),
		logger.FieldAmount, result.Total.StringFixed(domain.MoneyScale),
		logger.FieldRebate, result.Rebate.StringFixed(domain.MoneyScale),
		"installments", len(result.PaymentIDs),
	)
	s.publishPaid(ctx, input, result)
	return result, nil
}

// DeletePayment removes a single installment, crediting back its settling wallet when it was paid
func (s *InvoiceService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		p, err := st.Payments().GetByID(ctx, id)
		if err != nil {
			return err
		}
		return RemovePayment(ctx, st, p)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "installment deleted", logger.FieldPaymentID, id)
	return nil
}

// InvoiceAmount returns the total of the card's installments due in the month, paid or not
func (s *InvoiceService) InvoiceAmount(ctx context.Context, cardID uuid.UUID, month domain.YearMonth) (decimal.Decimal, error) {
	amount := decimal.Zero
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.CreditCards().GetByID(ctx, cardID); err != nil {
			return err
		}
		var err error
		amount, err = st.Payments().SumByCardAndMonth(ctx, cardID, month)
		return err
	})
	return amount, err
}

// RemovePayment deletes an installment inside an open unit of work. A paid
// installment first credits what the wallet paid for it back to the settling
// wallet and returns its share of the rebate to the card.
func RemovePayment(ctx context.Context, st domain.Store, p *domain.CreditCardPayment) error {
	if p.IsPaid() {
		if err := ledger.ApplyBalanceDelta(ctx, st.Wallets(), *p.WalletID, p.Amount.Sub(p.RebateUsed)); err != nil {
			return err
		}
		if p.RebateUsed.IsPositive() {
			if err := returnRebate(ctx, st, p); err != nil {
				return err
			}
		}
	}
	return st.Payments().Delete(ctx, p.ID)
}

func returnRebate(ctx context.Context, st domain.Store, p *domain.CreditCardPayment) error {
	debt, err := st.Debts().GetByID(ctx, p.DebtID)
	if err != nil {
		return err
	}
	card, err := st.CreditCards().GetByID(ctx, debt.CreditCardID)
	if err != nil {
		return err
	}
	if err := card.AdjustRebate(p.RebateUsed); err != nil {
		return err
	}
	return st.CreditCards().Update(ctx, card)
}

// SplitRebate shares rebate across the batch in proportion to each amount,
// rounded to cents. The last payment absorbs the rounding remainder so the
// shares always add up to rebate.
func SplitRebate(batch []*domain.CreditCardPayment, total, rebate decimal.Decimal) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(batch))
	remaining := rebate
	for i, p := range batch {
		if i == len(batch)-1 || total.IsZero() {
			shares[i] = remaining
			remaining = decimal.Zero
			continue
		}
		share := domain.RoundMoney(p.Amount.Mul(rebate).Div(total))
		if share.GreaterThan(remaining) {
			share = remaining
		}
		shares[i] = share
		remaining = remaining.Sub(share)
	}
	return shares
}

func (s *InvoiceService) publishPaid(ctx context.Context, input PayInvoiceInput, result *PayInvoiceResult) {
	if s.Publisher == nil {
		return
	}
	ids := make([]string, len(result.PaymentIDs))
	for i, id := range result.PaymentIDs {
		ids[i] = id.String()
	}
	event := domain.InvoicePaid{
		CreditCardID: input.CreditCardID.String(),
		WalletID:     input.WalletID.String(),
		Month:        input.Month.String(),
		Total:        result.Total.StringFixed(domain.MoneyScale),
		Rebate:       result.Rebate.StringFixed(domain.MoneyScale),
		PaymentIDs:   ids,
	}
	if err := s.Publisher.Publish(ctx, domain.TopicInvoicePaid, event); err != nil {
		s.Log.ErrorContext(ctx, "failed to publish event",
			logger.FieldTopic, domain.TopicInvoicePaid,
			logger.FieldCardID, input.CreditCardID,
			logger.FieldError, err,
		)
	}
}
