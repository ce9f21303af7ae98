package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// AddEntryInput represents the input for recording a ledger entry
type AddEntryInput struct {
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Kind        domain.EntryKind
	Status      domain.EntryStatus
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// UpdateEntryInput carries the full desired state of an existing entry
type UpdateEntryInput struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID
	Kind        domain.EntryKind
	Status      domain.EntryStatus
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// LedgerService keeps wallet balances equal to the sum of their confirmed entries
type LedgerService struct {
	UoW domain.UnitOfWork
	Log *logger.Logger
}

// NewLedgerService creates a new LedgerService instance
func NewLedgerService(uow domain.UnitOfWork, log *logger.Logger) *LedgerService {
	return &LedgerService{
		UoW: uow,
		Log: log.WithComponent(logger.ComponentLedger),
	}
}

// AddEntry records a new income or expense.
// Logic:
//  1. Reject non-positive amounts, round the amount half-up to 2 places
//  2. Ensure the wallet exists
//  3. Create the entry
//  4. If CONFIRMED, apply the signed amount to the wallet
func (s *LedgerService) AddEntry(ctx context.Context, input AddEntryInput) (uuid.UUID, error) {
	entry := &domain.LedgerEntry{
		ID:          uuid.New(),
		WalletID:    input.WalletID,
		CategoryID:  input.CategoryID,
		Kind:        input.Kind,
		Status:      input.Status,
		Amount:      domain.RoundMoney(input.Amount),
		Date:        input.Date,
		Description: input.Description,
	}
	if err := entry.Validate(); err != nil {
		return uuid.Nil, err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.Wallets().GetByID(ctx, entry.WalletID); err != nil {
			return err
		}
		if err := st.Entries().Create(ctx, entry); err != nil {
			return err
		}
		effect, err := entry.BalanceEffect()
		if err != nil {
			return err
		}
		return ApplyBalanceDelta(ctx, st.Wallets(), entry.WalletID, effect)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "ledger entry added",
		logger.FieldEntryID, entry.ID,
		logger.FieldWalletID, entry.WalletID,
		"kind", entry.Kind,
		"status", entry.Status,
		logger.FieldAmount, entry.Amount.StringFixed(domain.MoneyScale),
	)
	return entry.ID, nil
}

// AddIncome records an income entry
func (s *LedgerService) AddIncome(ctx context.Context, input AddEntryInput) (uuid.UUID, error) {
	input.Kind = domain.EntryKindIncome
	return s.AddEntry(ctx, input)
}

// AddExpense records an expense entry
func (s *LedgerService) AddExpense(ctx context.Context, input AddEntryInput) (uuid.UUID, error) {
	input.Kind = domain.EntryKindExpense
	return s.AddEntry(ctx, input)
}

// GetEntry returns an entry by id
func (s *LedgerService) GetEntry(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	var entry *domain.LedgerEntry
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		entry, err = st.Entries().GetByID(ctx, id)
		return err
	})
	return entry, err
}

// DeleteEntry removes an entry, reverting its wallet effect when it was CONFIRMED
func (s *LedgerService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	var entry *domain.LedgerEntry
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		entry, err = st.Entries().GetByID(ctx, id)
		if err != nil {
			return err
		}
		effect, err := entry.BalanceEffect()
		if err != nil {
			return err
		}
		if err := ApplyBalanceDelta(ctx, st.Wallets(), entry.WalletID, effect.Neg()); err != nil {
			return err
		}
		return st.Entries().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "ledger entry deleted",
		logger.FieldEntryID, id,
		logger.FieldWalletID, entry.WalletID,
		logger.FieldAmount, entry.Amount.StringFixed(domain.MoneyScale),
	)
	return nil
}

// ConfirmEntry flips a PENDING entry to CONFIRMED and applies its signed amount.
// Confirming an already confirmed entry is a conflict.
func (s *LedgerService) ConfirmEntry(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		entry, err := st.Entries().GetByID(ctx, id)
		if err != nil {
			return err
		}
		confirmed, err := entry.Status.IsConfirmed()
		if err != nil {
			return err
		}
		if confirmed {
			return domain.Conflictf("ledger entry %s is already confirmed", id)
		}

		signed, err := entry.SignedAmount()
		if err != nil {
			return err
		}
		if err := ApplyBalanceDelta(ctx, st.Wallets(), entry.WalletID, signed); err != nil {
			return err
		}
		entry.Status = domain.EntryStatusConfirmed
		return st.Entries().Update(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "ledger entry confirmed", logger.FieldEntryID, id)
	return nil
}

// UpdateEntry moves an entry to the desired state.
// Logic, each step a no-op when its field is unchanged:
//  1. Change wallet: a confirmed entry leaves the old wallet and lands on the new one
//  2. Change kind: a confirmed entry swings its wallet by twice the amount
//  3. Change amount: a confirmed entry applies only the signed difference
//  4. Change status: confirming applies the signed amount, unconfirming reverts it
//
// Date, description and category are overwritten as given.
func (s *LedgerService) UpdateEntry(ctx context.Context, input UpdateEntryInput) error {
	newAmount := domain.RoundMoney(input.Amount)
	if !newAmount.IsPositive() {
		return domain.Validationf("amount must be greater than zero")
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		entry, err := st.Entries().GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if _, err := st.Wallets().GetByID(ctx, input.WalletID); err != nil {
			return err
		}

		wallets := st.Wallets()
		if err := changeWallet(ctx, wallets, entry, input.WalletID); err != nil {
			return err
		}
		if err := changeKind(ctx, wallets, entry, input.Kind); err != nil {
			return err
		}
		if err := changeAmount(ctx, wallets, entry, newAmount); err != nil {
			return err
		}
		if err := changeStatus(ctx, wallets, entry, input.Status); err != nil {
			return err
		}

		entry.CategoryID = input.CategoryID
		entry.Date = input.Date
		entry.Description = input.Description
		return st.Entries().Update(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "ledger entry updated",
		logger.FieldEntryID, input.ID,
		logger.FieldWalletID, input.WalletID,
		"kind", input.Kind,
		"status", input.Status,
		logger.FieldAmount, newAmount.StringFixed(domain.MoneyScale),
	)
	return nil
}

func changeWallet(ctx context.Context, wallets domain.WalletRepository, entry *domain.LedgerEntry, walletID uuid.UUID) error {
	if entry.WalletID == walletID {
		return nil
	}
	effect, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	if err := ApplyBalanceDelta(ctx, wallets, entry.WalletID, effect.Neg()); err != nil {
		return err
	}
	if err := ApplyBalanceDelta(ctx, wallets, walletID, effect); err != nil {
		return err
	}
	entry.WalletID = walletID
	return nil
}

func changeKind(ctx context.Context, wallets domain.WalletRepository, entry *domain.LedgerEntry, kind domain.EntryKind) error {
	if entry.Kind == kind {
		return nil
	}
	if _, err := kind.Sign(); err != nil {
		return err
	}
	before, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	entry.Kind = kind
	after, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	return ApplyBalanceDelta(ctx, wallets, entry.WalletID, after.Sub(before))
}

func changeAmount(ctx context.Context, wallets domain.WalletRepository, entry *domain.LedgerEntry, amount decimal.Decimal) error {
	if entry.Amount.Equal(amount) {
		return nil
	}
	before, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	entry.Amount = amount
	after, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	return ApplyBalanceDelta(ctx, wallets, entry.WalletID, after.Sub(before))
}

func changeStatus(ctx context.Context, wallets domain.WalletRepository, entry *domain.LedgerEntry, status domain.EntryStatus) error {
	if entry.Status == status {
		return nil
	}
	if _, err := status.IsConfirmed(); err != nil {
		return err
	}
	before, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	entry.Status = status
	after, err := entry.BalanceEffect()
	if err != nil {
		return err
	}
	return ApplyBalanceDelta(ctx, wallets, entry.WalletID, after.Sub(before))
}
