package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletRepository defines the interface for wallet persistence operations
type WalletRepository interface {
	// GetByID retrieves a wallet by its ID. Missing wallets yield an ErrNotFound-wrapped error.
	GetByID(ctx context.Context, id uuid.UUID) (*Wallet, error)

	// ExistsByName reports whether a wallet with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List retrieves every wallet ordered by name
	List(ctx context.Context) ([]*Wallet, error)

	// Create creates a new wallet
	Create(ctx context.Context, wallet *Wallet) error

	// Update persists the wallet if its stored version still equals wallet.Version,
	// then bumps wallet.Version. A stale version yields ErrVersionMismatch.
	Update(ctx context.Context, wallet *Wallet) error

	// Delete removes a wallet
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryRepository defines the interface for ledger entry persistence operations
type EntryRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)
	Create(ctx context.Context, entry *LedgerEntry) error

	// Update is a compare-and-swap on entry.Version, like WalletRepository.Update
	Update(ctx context.Context, entry *LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByWallet returns how many entries belong to the wallet
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error)
}

// TransferRepository defines the interface for transfer persistence operations
type TransferRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Transfer, error)
	Create(ctx context.Context, transfer *Transfer) error
	Update(ctx context.Context, transfer *Transfer) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByWallet returns how many transfers have the wallet on either side
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error)
}

// OperatorRepository defines the interface for credit card operator persistence operations
type OperatorRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCardOperator, error)
	Create(ctx context.Context, operator *CreditCardOperator) error
	List(ctx context.Context) ([]*CreditCardOperator, error)
}

// CreditCardRepository defines the interface for credit card persistence operations
type CreditCardRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCard, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*CreditCard, error)
	Create(ctx context.Context, card *CreditCard) error
	Update(ctx context.Context, card *CreditCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditRepository defines the interface for card credit persistence operations
type CreditRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCardCredit, error)
	Create(ctx context.Context, credit *CreditCardCredit) error
	Update(ctx context.Context, credit *CreditCardCredit) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByCard returns the card's credits ordered by date
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*CreditCardCredit, error)

	// CountByCard returns how many credits were recorded on the card
	CountByCard(ctx context.Context, cardID uuid.UUID) (int, error)
}

// DebtRepository defines the interface for credit card debt persistence operations
type DebtRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCardDebt, error)
	Create(ctx context.Context, debt *CreditCardDebt) error
	Update(ctx context.Context, debt *CreditCardDebt) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCard returns how many debts were registered on the card
	CountByCard(ctx context.Context, cardID uuid.UUID) (int, error)
}

// PaymentRepository defines the interface for installment persistence operations
type PaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCardPayment, error)
	Create(ctx context.Context, payment *CreditCardPayment) error

	// Update is a compare-and-swap on payment.Version
	Update(ctx context.Context, payment *CreditCardPayment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByDebt returns the debt's payments ordered by installment number
	ListByDebt(ctx context.Context, debtID uuid.UUID) ([]*CreditCardPayment, error)

	// ListPendingByCardAndMonth returns the card's unpaid payments due in the month
	ListPendingByCardAndMonth(ctx context.Context, cardID uuid.UUID, month YearMonth) ([]*CreditCardPayment, error)

	// ListPendingByCardFrom returns the card's unpaid payments due at or after from
	ListPendingByCardFrom(ctx context.Context, cardID uuid.UUID, from time.Time) ([]*CreditCardPayment, error)

	// CountPendingByCard returns how many unpaid payments the card has
	CountPendingByCard(ctx context.Context, cardID uuid.UUID) (int, error)

	// SumPendingByCard returns the total of the card's unpaid payments
	SumPendingByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error)

	// SumByCardAndMonth returns the total of all the card's payments due in the month, paid or not
	SumByCardAndMonth(ctx context.Context, cardID uuid.UUID, month YearMonth) (decimal.Decimal, error)

	// SumPending returns the total of every unpaid payment across all cards
	SumPending(ctx context.Context) (decimal.Decimal, error)

	// EarliestPendingDueDate returns the earliest due date among the card's unpaid
	// payments, or nil when the card has none
	EarliestPendingDueDate(ctx context.Context, cardID uuid.UUID) (*time.Time, error)
}

// Store groups the repositories visible inside one unit of work
type Store interface {
	Wallets() WalletRepository
	Entries() EntryRepository
	Transfers() TransferRepository
	Operators() OperatorRepository
	CreditCards() CreditCardRepository
	Credits() CreditRepository
	Debts() DebtRepository
	Payments() PaymentRepository
}

// UnitOfWork runs fn atomically: every write made through st commits, or none does
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, st Store) error) error
}
