package wallet

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// AddWalletInput represents the input for creating a wallet
type AddWalletInput struct {
	Name           string
	InitialBalance decimal.Decimal
	Purpose        domain.WalletPurpose
}

// WalletService manages the wallet lifecycle. Balances are only ever touched
// here at creation time; afterwards the ledger owns them.
type WalletService struct {
	UoW domain.UnitOfWork
	Log *logger.Logger
}

// NewWalletService creates a new WalletService instance
func NewWalletService(uow domain.UnitOfWork, log *logger.Logger) *WalletService {
	return &WalletService{
		UoW: uow,
		Log: log.WithComponent(logger.ComponentWallet),
	}
}

// AddWallet creates a wallet with an opening balance
// Logic:
//  1. Trim the name and round the opening balance to cents
//  2. Validate (non-blank name, known purpose)
//  3. Reject duplicate names
//  4. Persist
func (s *WalletService) AddWallet(ctx context.Context, input AddWalletInput) (uuid.UUID, error) {
	w := &domain.Wallet{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Purpose: input.Purpose,
		Balance: domain.RoundMoney(input.InitialBalance),
	}
	if w.Purpose == "" {
		w.Purpose = domain.WalletPurposeGeneral
	}
	if err := w.Validate(); err != nil {
		return uuid.Nil, err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if err := ensureUniqueName(ctx, st, w.Name); err != nil {
			return err
		}
		return st.Wallets().Create(ctx, w)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "wallet added",
		logger.FieldWalletID, w.ID,
		"name", w.Name,
		logger.FieldAmount, w.Balance.StringFixed(domain.MoneyScale),
	)
	return w.ID, nil
}

// RenameWallet changes a wallet's name, keeping names unique
func (s *WalletService) RenameWallet(ctx context.Context, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Validationf("wallet name cannot be empty")
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		w, err := st.Wallets().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if w.Name == name {
			return nil
		}
		if err := ensureUniqueName(ctx, st, name); err != nil {
			return err
		}
		w.Name = name
		return st.Wallets().Update(ctx, w)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "wallet renamed", logger.FieldWalletID, id, "name", name)
	return nil
}

// ArchiveWallet hides a wallet from active use
func (s *WalletService) ArchiveWallet(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, true)
}

// UnarchiveWallet restores an archived wallet
func (s *WalletService) UnarchiveWallet(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, false)
}

func (s *WalletService) setArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		w, err := st.Wallets().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if w.Archived == archived {
			return nil
		}
		w.Archived = archived
		return st.Wallets().Update(ctx, w)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "wallet archive flag changed", logger.FieldWalletID, id, "archived", archived)
	return nil
}

// DeleteWallet permanently removes a wallet that has no ledger history.
// Wallets referenced by entries or transfers must be archived instead.
func (s *WalletService) DeleteWallet(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.Wallets().GetByID(ctx, id); err != nil {
			return err
		}

		entries, err := st.Entries().CountByWallet(ctx, id)
		if err != nil {
			return err
		}
		transfers, err := st.Transfers().CountByWallet(ctx, id)
		if err != nil {
			return err
		}
		if entries > 0 || transfers > 0 {
			return domain.Conflictf("wallet %s has %d entries and %d transfers and cannot be deleted", id, entries, transfers)
		}

		return st.Wallets().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "wallet deleted", logger.FieldWalletID, id)
	return nil
}

// GetWallet returns a wallet by id
func (s *WalletService) GetWallet(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	var w *domain.Wallet
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		w, err = st.Wallets().GetByID(ctx, id)
		return err
	})
	return w, err
}

// ListWallets returns every wallet ordered by name
func (s *WalletService) ListWallets(ctx context.Context) ([]*domain.Wallet, error) {
	var wallets []*domain.Wallet
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		wallets, err = st.Wallets().List(ctx)
		return err
	})
	return wallets, err
}

func ensureUniqueName(ctx context.Context, st domain.Store, name string) error {
	exists, err := st.Wallets().ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return domain.Conflictf("wallet with name %q already exists", name)
	}
	return nil
}
