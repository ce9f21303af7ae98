package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// CardInvoice is one card's invoice total for a month
type CardInvoice struct {
	CardID uuid.UUID
	Name   string
	Month  domain.YearMonth
	Amount decimal.Decimal
}

// Overview represents the calculated financial position
type Overview struct {
	TotalBalance        decimal.Decimal
	PendingInstallments decimal.Decimal
	Net                 decimal.Decimal
	Invoices            []CardInvoice
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	UoW domain.UnitOfWork
	Log *logger.Logger
	Now func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(uow domain.UnitOfWork, log *logger.Logger) *DashboardService {
	return &DashboardService{
		UoW: uow,
		Log: log.WithComponent(logger.ComponentDashboard),
		Now: time.Now,
	}
}

// GetOverview calculates the current financial position
// Logic:
//   - TotalBalance: Sum of all non-archived wallet balances
//   - PendingInstallments: Sum of every unpaid installment across all cards
//   - Net: TotalBalance - PendingInstallments
//   - Invoices: current month invoice amount of every non-archived card
func (s *DashboardService) GetOverview(ctx context.Context) (*Overview, error) {
	month := domain.YearMonthOf(s.Now())
	out := &Overview{TotalBalance: decimal.Zero, PendingInstallments: decimal.Zero}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		// 1. Wallet balances
		wallets, err := st.Wallets().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list wallets: %w", err)
		}
		for _, w := range wallets {
			if w.Archived {
				continue
			}
			out.TotalBalance = out.TotalBalance.Add(w.Balance)
		}

		// 2. Outstanding installments
		out.PendingInstallments, err = st.Payments().SumPending(ctx)
		if err != nil {
			return fmt.Errorf("failed to sum pending installments: %w", err)
		}

		// 3. Current invoices
		cards, err := st.CreditCards().List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list credit cards: %w", err)
		}
		for _, c := range cards {
			if c.Archived {
				continue
			}
			amount, err := st.Payments().SumByCardAndMonth(ctx, c.ID, month)
			if err != nil {
				return fmt.Errorf("failed to sum invoice of card %s: %w", c.ID, err)
			}
			out.Invoices = append(out.Invoices, CardInvoice{CardID: c.ID, Name: c.Name, Month: month, Amount: amount})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Net = out.TotalBalance.Sub(out.PendingInstallments)
	return out, nil
}
