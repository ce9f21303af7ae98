package grpc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
	"github.com/simaogato/walletledger-backend/internal/domain"
)

func parseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

// parseOptionalID returns nil for an empty string
func parseOptionalID(field, s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := parseID(field, s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return amount, nil
}

// parseMonth reads a "YYYY-MM" invoice month
func parseMonth(field, s string) (domain.YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return domain.YearMonth{}, status.Errorf(codes.InvalidArgument, "invalid %s format, want YYYY-MM: %v", field, err)
	}
	return domain.YearMonthOf(t), nil
}

// parseTime returns now when ts is unset
func parseTime(field string, ts *timestamppb.Timestamp, now time.Time) (time.Time, error) {
	if ts == nil {
		return now, nil
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return ts.AsTime(), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyScale)
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func walletToMessage(w *domain.Wallet) *walletledgerv1.Wallet {
	return &walletledgerv1.Wallet{
		Id:       w.ID.String(),
		Name:     w.Name,
		Purpose:  string(w.Purpose),
		Balance:  money(w.Balance),
		Archived: w.Archived,
	}
}

func entryToMessage(e *domain.LedgerEntry) *walletledgerv1.Entry {
	return &walletledgerv1.Entry{
		Id:          e.ID.String(),
		WalletId:    e.WalletID.String(),
		CategoryId:  e.CategoryID.String(),
		Kind:        string(e.Kind),
		Status:      string(e.Status),
		Amount:      money(e.Amount),
		Date:        timestamppb.New(e.Date),
		Description: e.Description,
	}
}

func transferToMessage(t *domain.Transfer) *walletledgerv1.Transfer {
	return &walletledgerv1.Transfer{
		Id:               t.ID.String(),
		SenderWalletId:   t.SenderWalletID.String(),
		ReceiverWalletId: t.ReceiverWalletID.String(),
		CategoryId:       optionalID(t.CategoryID),
		Amount:           money(t.Amount),
		Date:             timestamppb.New(t.Date),
		Description:      t.Description,
	}
}

func cardToMessage(c *domain.CreditCard) *walletledgerv1.CreditCard {
	return &walletledgerv1.CreditCard{
		Id:                     c.ID.String(),
		Name:                   c.Name,
		BillingDueDay:          int32(c.BillingDueDay),
		ClosingDay:             int32(c.ClosingDay),
		MaxDebt:                money(c.MaxDebt),
		LastFourDigits:         c.LastFourDigits,
		OperatorId:             c.OperatorID.String(),
		DefaultBillingWalletId: optionalID(c.DefaultBillingWalletID),
		Archived:               c.Archived,
		AvailableRebate:        money(c.AvailableRebate),
	}
}

func creditToMessage(c *domain.CreditCardCredit) *walletledgerv1.Credit {
	return &walletledgerv1.Credit{
		Id:           c.ID.String(),
		CreditCardId: c.CreditCardID.String(),
		Type:         string(c.Type),
		Amount:       money(c.Amount),
		Date:         timestamppb.New(c.Date),
		Description:  c.Description,
	}
}

func debtToMessage(d *domain.CreditCardDebt, payments []*domain.CreditCardPayment) *walletledgerv1.Debt {
	out := &walletledgerv1.Debt{
		Id:           d.ID.String(),
		CreditCardId: d.CreditCardID.String(),
		CategoryId:   d.CategoryID.String(),
		TotalAmount:  money(d.TotalAmount),
		Installments: int32(d.Installments),
		RegisterDate: timestamppb.New(d.RegisterDate),
		Description:  d.Description,
		Payments:     make([]*walletledgerv1.Payment, 0, len(payments)),
	}
	for _, p := range payments {
		out.Payments = append(out.Payments, &walletledgerv1.Payment{
			Id:          p.ID.String(),
			Installment: int32(p.Installment),
			Amount:      money(p.Amount),
			DueDate:     timestamppb.New(p.DueDate),
			WalletId:    optionalID(p.WalletID),
			RebateUsed:  money(p.RebateUsed),
		})
	}
	return out
}
