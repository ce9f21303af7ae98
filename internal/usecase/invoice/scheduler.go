package invoice

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// DeriveNextInvoiceDate computes the next invoice date of a card with no
// pending installments: the billing due day of the current month, or of the
// next month once the closing day has passed.
func DeriveNextInvoiceDate(card *domain.CreditCard, now time.Time) time.Time {
	month := domain.YearMonthOf(now)
	if now.Day() > card.ClosingDay {
		month = month.AddMonths(1)
	}
	return month.DueDate(card.BillingDueDay, now.Location())
}

// StatusFor tells whether the invoice of month is still OPEN given the card's
// next invoice date. The invoice is OPEN when (month, next's day, 23:59) is at
// or after next with its time of day zeroed.
func StatusFor(next time.Time, month domain.YearMonth) domain.InvoiceStatus {
	loc := next.Location()
	nextMidnight := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc)
	compare := time.Date(month.Year, month.Month, next.Day(), 23, 59, 0, 0, loc)

	if compare.Before(nextMidnight) {
		return domain.InvoiceStatusClosed
	}
	return domain.InvoiceStatusOpen
}

// NextInvoiceDate returns the earliest due date among the card's pending
// installments, or the derived date when nothing is pending
func (s *InvoiceService) NextInvoiceDate(ctx context.Context, cardID uuid.UUID) (time.Time, error) {
	var next time.Time
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		next, err = nextInvoiceDate(ctx, st, cardID, s.Now())
		return err
	})
	return next, err
}

// InvoiceStatus returns whether the card's invoice for month is OPEN or CLOSED
func (s *InvoiceService) InvoiceStatus(ctx context.Context, cardID uuid.UUID, month domain.YearMonth) (domain.InvoiceStatus, error) {
	next, err := s.NextInvoiceDate(ctx, cardID)
	if err != nil {
		return "", err
	}
	return StatusFor(next, month), nil
}

func nextInvoiceDate(ctx context.Context, st domain.Store, cardID uuid.UUID, now time.Time) (time.Time, error) {
	card, err := st.CreditCards().GetByID(ctx, cardID)
	if err != nil {
		return time.Time{}, err
	}

	earliest, err := st.Payments().EarliestPendingDueDate(ctx, cardID)
	if err != nil {
		return time.Time{}, err
	}
	if earliest != nil {
		return *earliest, nil
	}
	return DeriveNextInvoiceDate(card, now), nil
}
