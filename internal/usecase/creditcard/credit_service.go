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

// CreditInput represents a cashback or refund granted on a card
type CreditInput struct {
	CreditCardID uuid.UUID
	Type         domain.CreditType
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
}

func (in CreditInput) toCredit(id uuid.UUID) *domain.CreditCardCredit {
	return &domain.CreditCardCredit{
		ID:           id,
		CreditCardID: in.CreditCardID,
		Type:         in.Type,
		Amount:       domain.RoundMoney(in.Amount),
		Date:         in.Date,
		Description:  strings.TrimSpace(in.Description),
	}
}

// AddCredit records a credit and adds its amount to the card's available rebate
func (s *CardService) AddCredit(ctx context.Context, input CreditInput) (uuid.UUID, error) {
	credit := input.toCredit(uuid.New())
	if err := credit.Validate(); err != nil {
		return uuid.Nil, err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if err := adjustRebate(ctx, st, credit.CreditCardID, credit.Amount); err != nil {
			return err
		}
		return st.Credits().Create(ctx, credit)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "credit added",
		logger.FieldCreditID, credit.ID,
		logger.FieldCardID, credit.CreditCardID,
		logger.FieldAmount, credit.Amount.StringFixed(domain.MoneyScale),
		"type", credit.Type,
	)
	return credit.ID, nil
}

// UpdateCredit overwrites a credit. The rebate of the old card loses the old
// amount and the rebate of the new card gains the new one; a change that would
// take back rebate already spent on invoices is a conflict.
func (s *CardService) UpdateCredit(ctx context.Context, id uuid.UUID, input CreditInput) error {
	credit := input.toCredit(id)
	if err := credit.Validate(); err != nil {
		return err
	}

	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		old, err := st.Credits().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if old.CreditCardID == credit.CreditCardID {
			if err := adjustRebate(ctx, st, credit.CreditCardID, credit.Amount.Sub(old.Amount)); err != nil {
				return err
			}
		} else {
			if err := adjustRebate(ctx, st, old.CreditCardID, old.Amount.Neg()); err != nil {
				return err
			}
			if err := adjustRebate(ctx, st, credit.CreditCardID, credit.Amount); err != nil {
				return err
			}
		}
		return st.Credits().Update(ctx, credit)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "credit updated", logger.FieldCreditID, id, logger.FieldCardID, credit.CreditCardID)
	return nil
}

// DeleteCredit removes a credit and takes its amount back from the card's available rebate
func (s *CardService) DeleteCredit(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		credit, err := st.Credits().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := adjustRebate(ctx, st, credit.CreditCardID, credit.Amount.Neg()); err != nil {
			return err
		}
		return st.Credits().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "credit deleted", logger.FieldCreditID, id)
	return nil
}

// ListCredits returns the card's credits ordered by date
func (s *CardService) ListCredits(ctx context.Context, cardID uuid.UUID) ([]*domain.CreditCardCredit, error) {
	var credits []*domain.CreditCardCredit
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if _, err := st.CreditCards().GetByID(ctx, cardID); err != nil {
			return err
		}
		var err error
		credits, err = st.Credits().ListByCard(ctx, cardID)
		return err
	})
	return credits, err
}

func adjustRebate(ctx context.Context, st domain.Store, cardID uuid.UUID, delta decimal.Decimal) error {
	card, err := st.CreditCards().GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if err := card.AdjustRebate(delta); err != nil {
		return err
	}
	return st.CreditCards().Update(ctx, card)
}
