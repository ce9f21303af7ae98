package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var lastFourDigitsPattern = regexp.MustCompile(`^\d{4}$`)

// CreditCardOperator is the network a card belongs to (Visa, Mastercard...)
type CreditCardOperator struct {
	ID   uuid.UUID
	Name string
}

// CreditCard is a credit line whose purchases are amortized into installments
type CreditCard struct {
	ID                     uuid.UUID
	Name                   string
	BillingDueDay          int
	ClosingDay             int
	MaxDebt                decimal.Decimal
	LastFourDigits         string
	OperatorID             uuid.UUID
	DefaultBillingWalletID *uuid.UUID
	AvailableRebate        decimal.Decimal
	Archived               bool
}

// Validate ensures the card adheres to domain rules
func (c *CreditCard) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return Validationf("credit card name cannot be empty")
	}
	if c.BillingDueDay < 1 || c.BillingDueDay > MaxBillingDueDay {
		return Validationf("billing due day must be in the range [1, %d]", MaxBillingDueDay)
	}
	if c.ClosingDay < 1 || c.ClosingDay > MaxBillingDueDay {
		return Validationf("closing day must be in the range [1, %d]", MaxBillingDueDay)
	}
	if !c.MaxDebt.IsPositive() {
		return Validationf("max debt must be greater than zero")
	}
	if !lastFourDigitsPattern.MatchString(c.LastFourDigits) {
		return Validationf("last four digits must be 4 numeric characters")
	}
	if c.OperatorID == uuid.Nil {
		return Validationf("operator id is required")
	}
	return nil
}

// AdjustRebate adds delta to the available rebate, which never goes below zero
func (c *CreditCard) AdjustRebate(delta decimal.Decimal) error {
	next := c.AvailableRebate.Add(delta)
	if next.IsNegative() {
		return Conflictf("credit card %s has %s of rebate left, cannot take back %s",
			c.ID, c.AvailableRebate.StringFixed(MoneyScale), delta.Neg().StringFixed(MoneyScale))
	}
	c.AvailableRebate = next
	return nil
}

// CreditCardDebt is one purchase amortized over Installments payments
type CreditCardDebt struct {
	ID           uuid.UUID
	CreditCardID uuid.UUID
	CategoryID   uuid.UUID
	TotalAmount  decimal.Decimal
	Installments int
	RegisterDate time.Time
	Description  string
}

// ValidateInstallments checks the installment count bounds
func ValidateInstallments(n int) error {
	if n < 1 || n > MaxInstallments {
		return Validationf("installments must be in the range [1, %d]", MaxInstallments)
	}
	return nil
}

// CreditCardPayment is one scheduled installment of a debt.
// WalletID is nil while the installment is pending and points at the
// settling wallet once the invoice containing it was paid.
type CreditCardPayment struct {
	ID          uuid.UUID
	DebtID      uuid.UUID
	Installment int // 1-based
	Amount      decimal.Decimal
	DueDate     time.Time
	WalletID    *uuid.UUID
	RebateUsed  decimal.Decimal
	Version     int64
}

// IsPaid reports whether a wallet settled this installment
func (p *CreditCardPayment) IsPaid() bool {
	return p.WalletID != nil
}

// CreditType is the origin of a card credit
type CreditType string

const (
	CreditTypeCashback CreditType = "CASHBACK"
	CreditTypeRefund   CreditType = "REFUND"
)

// ParseCreditType maps a stored or wire value onto a CreditType
func ParseCreditType(s string) (CreditType, error) {
	switch t := CreditType(strings.ToUpper(strings.TrimSpace(s))); t {
	case CreditTypeCashback, CreditTypeRefund:
		return t, nil
	default:
		return "", Validationf("unknown credit type %q", s)
	}
}

// CreditCardCredit is money the issuer gives back to a card. Its amount
// feeds the card's AvailableRebate, which invoice payments can consume.
type CreditCardCredit struct {
	ID           uuid.UUID
	CreditCardID uuid.UUID
	Type         CreditType
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
}

// Validate ensures the credit adheres to domain rules
func (c *CreditCardCredit) Validate() error {
	if c.CreditCardID == uuid.Nil {
		return Validationf("credit card id is required")
	}
	if _, err := ParseCreditType(string(c.Type)); err != nil {
		return err
	}
	if !c.Amount.IsPositive() {
		return Validationf("credit amount must be greater than zero")
	}
	return nil
}

// InvoiceStatus is the state of a card's monthly invoice
type InvoiceStatus string

const (
	InvoiceStatusOpen   InvoiceStatus = "OPEN"
	InvoiceStatusClosed InvoiceStatus = "CLOSED"
)
