package creditcard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/allocator"
	"github.com/simaogato/walletledger-backend/internal/usecase/invoice"
)

// RegisterDebtInput represents the input for registering a purchase on a card
type RegisterDebtInput struct {
	CreditCardID uuid.UUID
	CategoryID   uuid.UUID
	RegisterDate time.Time
	InvoiceMonth domain.YearMonth
	TotalAmount  decimal.Decimal
	Installments int
	Description  string
}

// UpdateDebtInput carries the full desired state of a registered debt
type UpdateDebtInput struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	InvoiceMonth domain.YearMonth
	TotalAmount  decimal.Decimal
	Installments int
	Description  string
}

// DebtService registers card debts and keeps their installment schedules consistent
type DebtService struct {
	UoW        domain.UnitOfWork
	Publisher  domain.EventPublisher
	Log        *logger.Logger
	Rebalancer *Rebalancer
}

// NewDebtService creates a new DebtService instance
func NewDebtService(uow domain.UnitOfWork, publisher domain.EventPublisher, log *logger.Logger) *DebtService {
	l := log.WithComponent(logger.ComponentDebt)
	return &DebtService{
		UoW:        uow,
		Publisher:  publisher,
		Log:        l,
		Rebalancer: &Rebalancer{Log: l},
	}
}

// RegisterDebt creates a debt and its installment schedule.
// Logic:
//  1. Validate total (>= 0) and installment count, ensure the card exists
//  2. Reject totals above the card's available credit
//  3. Split with floor rounding, the remainder goes to installment #1
//  4. Create the debt and one pending payment per installment, installment i
//     due in invoiceMonth+i on the card's billing due day at 23:59
func (s *DebtService) RegisterDebt(ctx context.Context, input RegisterDebtInput) (uuid.UUID, error) {
	total := domain.RoundMoney(input.TotalAmount)
	if total.IsNegative() {
		return uuid.Nil, domain.Validationf("total amount cannot be negative")
	}
	if err := domain.ValidateInstallments(input.Installments); err != nil {
		return uuid.Nil, err
	}

	debt := &domain.CreditCardDebt{
		ID:           uuid.New(),
		CreditCardID: input.CreditCardID,
		CategoryID:   input.CategoryID,
		TotalAmount:  total,
		Installments: input.Installments,
		RegisterDate: input.RegisterDate,
		Description:  input.Description,
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, input.CreditCardID)
		if err != nil {
			return err
		}

		available, err := availableCredit(ctx, st, card)
		if err != nil {
			return err
		}
		if total.GreaterThan(available) {
			return fmt.Errorf("%w: credit card %s has %s available, debt needs %s",
				domain.ErrInsufficientCredit, card.ID, available.StringFixed(domain.MoneyScale), total.StringFixed(domain.MoneyScale))
		}

		amounts, err := allocator.SplitInstallments(total, input.Installments, allocator.Floor)
		if err != nil {
			return err
		}

		if err := st.Debts().Create(ctx, debt); err != nil {
			return err
		}

		loc := input.RegisterDate.Location()
		for i, amount := range amounts {
			due := input.InvoiceMonth.AddMonths(i).DueDate(card.BillingDueDay, loc)
			if err := st.Payments().Create(ctx, newPayment(debt.ID, i+1, amount, due)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "debt registered",
		logger.FieldDebtID, debt.ID,
		logger.FieldCardID, debt.CreditCardID,
		logger.FieldAmount, total.StringFixed(domain.MoneyScale),
		"installments", debt.Installments,
		logger.FieldMonth, input.InvoiceMonth.String(),
	)
	s.publishRegistered(ctx, debt, input.InvoiceMonth)
	return debt.ID, nil
}

// UpdateDebt applies, in order, the invoice month, total amount and
// installment count changes, then overwrites category and description
func (s *DebtService) UpdateDebt(ctx context.Context, input UpdateDebtInput) error {
	total := domain.RoundMoney(input.TotalAmount)
	if !total.IsPositive() {
		return domain.Validationf("total amount must be greater than zero")
	}
	if err := domain.ValidateInstallments(input.Installments); err != nil {
		return err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		debt, err := st.Debts().GetByID(ctx, input.ID)
		if err != nil {
			return err
		}

		if err := s.Rebalancer.ChangeInvoiceMonth(ctx, st, debt, input.InvoiceMonth); err != nil {
			return err
		}
		if err := s.Rebalancer.ChangeTotalAmount(ctx, st, debt, total); err != nil {
			return err
		}
		if err := s.Rebalancer.ChangeInstallmentCount(ctx, st, debt, input.Installments); err != nil {
			return err
		}

		if debt.CategoryID == input.CategoryID && debt.Description == input.Description {
			return nil
		}
		debt.CategoryID = input.CategoryID
		debt.Description = input.Description
		return st.Debts().Update(ctx, debt)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "debt updated",
		logger.FieldDebtID, input.ID,
		logger.FieldAmount, total.StringFixed(domain.MoneyScale),
		"installments", input.Installments,
	)
	return nil
}

// ChangeInvoiceMonth moves a debt's schedule to start in month
func (s *DebtService) ChangeInvoiceMonth(ctx context.Context, debtID uuid.UUID, month domain.YearMonth) error {
	return s.rebalance(ctx, debtID, func(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt) error {
		return s.Rebalancer.ChangeInvoiceMonth(ctx, st, debt, month)
	})
}

// ChangeTotalAmount re-splits a debt over a new positive total
func (s *DebtService) ChangeTotalAmount(ctx context.Context, debtID uuid.UUID, total decimal.Decimal) error {
	total = domain.RoundMoney(total)
	if !total.IsPositive() {
		return domain.Validationf("total amount must be greater than zero")
	}
	return s.rebalance(ctx, debtID, func(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt) error {
		return s.Rebalancer.ChangeTotalAmount(ctx, st, debt, total)
	})
}

// ChangeInstallmentCount re-splits a debt over n installments
func (s *DebtService) ChangeInstallmentCount(ctx context.Context, debtID uuid.UUID, n int) error {
	return s.rebalance(ctx, debtID, func(ctx context.Context, st domain.Store, debt *domain.CreditCardDebt) error {
		return s.Rebalancer.ChangeInstallmentCount(ctx, st, debt, n)
	})
}

// DeleteDebt removes every installment (crediting back paid ones) and then the debt
func (s *DebtService) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.Debts().GetByID(ctx, id); err != nil {
			return err
		}
		payments, err := st.Payments().ListByDebt(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range payments {
			if err := invoice.RemovePayment(ctx, st, p); err != nil {
				return err
			}
		}
		return st.Debts().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "debt deleted", logger.FieldDebtID, id)
	return nil
}

// GetDebt returns a debt together with its schedule ordered by installment
func (s *DebtService) GetDebt(ctx context.Context, id uuid.UUID) (*domain.CreditCardDebt, []*domain.CreditCardPayment, error) {
	var (
		debt     *domain.CreditCardDebt
		payments []*domain.CreditCardPayment
	)
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		if debt, err = st.Debts().GetByID(ctx, id); err != nil {
			return err
		}
		payments, err = st.Payments().ListByDebt(ctx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return debt, payments, nil
}

func (s *DebtService) rebalance(ctx context.Context, debtID uuid.UUID, fn func(context.Context, domain.Store, *domain.CreditCardDebt) error) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		debt, err := st.Debts().GetByID(ctx, debtID)
		if err != nil {
			return err
		}
		return fn(ctx, st, debt)
	})
	if err != nil {
		return err
	}
	s.Log.InfoContext(ctx, "debt schedule rebalanced", logger.FieldDebtID, debtID)
	return nil
}

func (s *DebtService) publishRegistered(ctx context.Context, debt *domain.CreditCardDebt, month domain.YearMonth) {
	if s.Publisher == nil {
		return
	}
	event := domain.DebtRegistered{
		DebtID:       debt.ID.String(),
		CreditCardID: debt.CreditCardID.String(),
		TotalAmount:  debt.TotalAmount.StringFixed(domain.MoneyScale),
		Installments: debt.Installments,
		InvoiceMonth: month.String(),
	}
	if err := s.Publisher.Publish(ctx, domain.TopicDebtRegistered, event); err != nil {
		s.Log.ErrorContext(ctx, "failed to publish event",
			logger.FieldTopic, domain.TopicDebtRegistered,
			logger.FieldDebtID, debt.ID,
			logger.FieldError, err,
		)
	}
}

func newPayment(debtID uuid.UUID, installment int, amount decimal.Decimal, due time.Time) *domain.CreditCardPayment {
	return &domain.CreditCardPayment{
		ID:          uuid.New(),
		DebtID:      debtID,
		Installment: installment,
		Amount:      amount,
		DueDate:     due,
	}
}

// availableCredit is the card's max debt minus everything still pending on it
func availableCredit(ctx context.Context, st domain.Store, card *domain.CreditCard) (decimal.Decimal, error) {
	pending, err := st.Payments().SumPendingByCard(ctx, card.ID)
	if err != nil {
		return decimal.Zero, err
	}
	return card.MaxDebt.Sub(pending), nil
}
