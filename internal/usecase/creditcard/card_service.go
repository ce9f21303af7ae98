package creditcard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// CreditCardInput represents the editable attributes of a card
type CreditCardInput struct {
	Name                   string
	BillingDueDay          int
	ClosingDay             int
	MaxDebt                decimal.Decimal
	LastFourDigits         string
	OperatorID             uuid.UUID
	DefaultBillingWalletID *uuid.UUID
}

// CardService manages credit cards
type CardService struct {
	UoW domain.UnitOfWork
	Log *logger.Logger
	Now func() time.Time
}

// NewCardService creates a new CardService instance
func NewCardService(uow domain.UnitOfWork, log *logger.Logger) *CardService {
	return &CardService{
		UoW: uow,
		Log: log.WithComponent(logger.ComponentCard),
		Now: time.Now,
	}
}

// AddCreditCard registers a new card with a unique name
func (s *CardService) AddCreditCard(ctx context.Context, input CreditCardInput) (uuid.UUID, error) {
	card := input.toCard(uuid.New())
	if err := card.Validate(); err != nil {
		return uuid.Nil, err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		exists, err := st.CreditCards().ExistsByName(ctx, card.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.Conflictf("credit card with name %q already exists", card.Name)
		}
		if err := checkReferences(ctx, st, card); err != nil {
			return err
		}
		return st.CreditCards().Create(ctx, card)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "credit card added", logger.FieldCardID, card.ID, "name", card.Name)
	return card.ID, nil
}

// UpdateCreditCard overwrites a card's attributes. When the billing due day
// changes, pending installments not yet due move to the new day; overdue ones stay.
func (s *CardService) UpdateCreditCard(ctx context.Context, id uuid.UUID, input CreditCardInput) error {
	card := input.toCard(id)
	if err := card.Validate(); err != nil {
		return err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		old, err := st.CreditCards().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old.Name != card.Name {
			exists, err := st.CreditCards().ExistsByName(ctx, card.Name)
			if err != nil {
				return err
			}
			if exists {
				return domain.Conflictf("credit card with name %q already exists", card.Name)
			}
		}
		if err := checkReferences(ctx, st, card); err != nil {
			return err
		}

		if old.BillingDueDay != card.BillingDueDay {
			payments, err := st.Payments().ListPendingByCardFrom(ctx, id, s.Now())
			if err != nil {
				return err
			}
			for _, p := range payments {
				d := p.DueDate
				p.DueDate = time.Date(d.Year(), d.Month(), card.BillingDueDay, d.Hour(), d.Minute(), d.Second(), 0, d.Location())
				if err := st.Payments().Update(ctx, p); err != nil {
					return err
				}
			}
		}

		card.Archived = old.Archived
		card.AvailableRebate = old.AvailableRebate
		return st.CreditCards().Update(ctx, card)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "credit card updated", logger.FieldCardID, id)
	return nil
}

// ArchiveCreditCard hides a card. Cards with pending installments cannot be archived.
func (s *CardService) ArchiveCreditCard(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, true)
}

// UnarchiveCreditCard restores an archived card
func (s *CardService) UnarchiveCreditCard(ctx context.Context, id uuid.UUID) error {
	return s.setArchived(ctx, id, false)
}

func (s *CardService) setArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if archived {
			pending, err := st.Payments().CountPendingByCard(ctx, id)
			if err != nil {
				return err
			}
			if pending > 0 {
				return domain.Conflictf("credit card %s has %d pending payments and cannot be archived", id, pending)
			}
		}
		card.Archived = archived
		return st.CreditCards().Update(ctx, card)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "credit card archive flag changed", logger.FieldCardID, id, "archived", archived)
	return nil
}

// DeleteCreditCard permanently removes a card that never had debts or credits
func (s *CardService) DeleteCreditCard(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.CreditCards().GetByID(ctx, id); err != nil {
			return err
		}
		debts, err := st.Debts().CountByCard(ctx, id)
		if err != nil {
			return err
		}
		if debts > 0 {
			return domain.Conflictf("credit card %s has debts and cannot be deleted", id)
		}
		credits, err := st.Credits().CountByCard(ctx, id)
		if err != nil {
			return err
		}
		if credits > 0 {
			return domain.Conflictf("credit card %s has credits and cannot be deleted", id)
		}
		return st.CreditCards().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "credit card deleted", logger.FieldCardID, id)
	return nil
}

// AvailableCredit returns max debt minus the card's pending installments
func (s *CardService) AvailableCredit(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	available := decimal.Zero
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		card, err := st.CreditCards().GetByID(ctx, id)
		if err != nil {
			return err
		}
		available, err = availableCredit(ctx, st, card)
		return err
	})
	return available, err
}

// GetCreditCard returns a card by id
func (s *CardService) GetCreditCard(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	var card *domain.CreditCard
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		card, err = st.CreditCards().GetByID(ctx, id)
		return err
	})
	return card, err
}

// ListCreditCards returns every card ordered by name
func (s *CardService) ListCreditCards(ctx context.Context) ([]*domain.CreditCard, error) {
	var cards []*domain.CreditCard
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		cards, err = st.CreditCards().List(ctx)
		return err
	})
	return cards, err
}

// ListOperators returns the operator catalogue ordered by name
func (s *CardService) ListOperators(ctx context.Context) ([]*domain.CreditCardOperator, error) {
	var operators []*domain.CreditCardOperator
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		operators, err = st.Operators().List(ctx)
		return err
	})
	return operators, err
}

func (in CreditCardInput) toCard(id uuid.UUID) *domain.CreditCard {
	return &domain.CreditCard{
		ID:                     id,
		Name:                   strings.TrimSpace(in.Name),
		BillingDueDay:          in.BillingDueDay,
		ClosingDay:             in.ClosingDay,
		MaxDebt:                domain.RoundMoney(in.MaxDebt),
		LastFourDigits:         in.LastFourDigits,
		OperatorID:             in.OperatorID,
		DefaultBillingWalletID: in.DefaultBillingWalletID,
	}
}

func checkReferences(ctx context.Context, st domain.Store, card *domain.CreditCard) error {
	if _, err := st.Operators().GetByID(ctx, card.OperatorID); err != nil {
		return err
	}
	if card.DefaultBillingWalletID != nil {
		if _, err := st.Wallets().GetByID(ctx, *card.DefaultBillingWalletID); err != nil {
			return err
		}
	}
	return nil
}
