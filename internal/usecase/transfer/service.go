package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/ledger"
)

// TransferInput represents the input for moving money between two wallets
type TransferInput struct {
	SenderWalletID   uuid.UUID
	ReceiverWalletID uuid.UUID
	CategoryID       *uuid.UUID
	Amount           decimal.Decimal
	Date             time.Time
	Description      string
}

// UpdateTransferInput carries the full desired state of a recorded transfer
type UpdateTransferInput struct {
	ID uuid.UUID
	TransferInput
}

// TransferService moves money between wallets as one atomic unit
type TransferService struct {
	UoW       domain.UnitOfWork
	Publisher domain.EventPublisher
	Log       *logger.Logger
}

// NewTransferService creates a new TransferService instance
func NewTransferService(uow domain.UnitOfWork, publisher domain.EventPublisher, log *logger.Logger) *TransferService {
	return &TransferService{
		UoW:       uow,
		Publisher: publisher,
		Log:       log.WithComponent(logger.ComponentTransfer),
	}
}

func (in TransferInput) build(id uuid.UUID) (*domain.Transfer, error) {
	t := &domain.Transfer{
		ID:               id,
		SenderWalletID:   in.SenderWalletID,
		ReceiverWalletID: in.ReceiverWalletID,
		CategoryID:       in.CategoryID,
		Amount:           domain.RoundMoney(in.Amount),
		Date:             in.Date,
		Description:      in.Description,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Transfer debits the sender and credits the receiver.
// Logic:
//  1. Reject equal endpoints and non-positive amounts, round the amount half-up
//  2. Ensure both wallets exist and the sender can afford the amount
//  3. Debit sender, credit receiver and record the transfer in one unit of work
//  4. Publish TransferCompleted once committed
func (s *TransferService) Transfer(ctx context.Context, input TransferInput) (uuid.UUID, error) {
	t, err := input.build(uuid.New())
	if err != nil {
		return uuid.Nil, err
	}

	err = s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		if err := checkFunds(ctx, st.Wallets(), t); err != nil {
			return err
		}
		if err := applyTransfer(ctx, st.Wallets(), t, decimal.NewFromInt(1)); err != nil {
			return err
		}
		return st.Transfers().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.Log.InfoContext(ctx, "transfer completed",
		logger.FieldTransferID, t.ID,
		"sender_wallet_id", t.SenderWalletID,
		"receiver_wallet_id", t.ReceiverWalletID,
		logger.FieldAmount, t.Amount.StringFixed(domain.MoneyScale),
	)
	s.publish(ctx, t)
	return t.ID, nil
}

// UpdateTransfer reverts the recorded two-sided effect and applies the new one
func (s *TransferService) UpdateTransfer(ctx context.Context, input UpdateTransferInput) error {
	t, err := input.build(input.ID)
	if err != nil {
		return err
	}

	err = s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		old, err := st.Transfers().GetByID(ctx, input.ID)
		if err != nil {
			return err
		}
		if err := applyTransfer(ctx, st.Wallets(), old, decimal.NewFromInt(-1)); err != nil {
			return err
		}
		if err := checkFunds(ctx, st.Wallets(), t); err != nil {
			return err
		}
		if err := applyTransfer(ctx, st.Wallets(), t, decimal.NewFromInt(1)); err != nil {
			return err
		}
		return st.Transfers().Update(ctx, t)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "transfer updated",
		logger.FieldTransferID, t.ID,
		logger.FieldAmount, t.Amount.StringFixed(domain.MoneyScale),
	)
	return nil
}

// DeleteTransfer reverts the two-sided effect and removes the transfer
func (s *TransferService) DeleteTransfer(ctx context.Context, id uuid.UUID) error {
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		t, err := st.Transfers().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyTransfer(ctx, st.Wallets(), t, decimal.NewFromInt(-1)); err != nil {
			return err
		}
		return st.Transfers().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.Log.InfoContext(ctx, "transfer deleted", logger.FieldTransferID, id)
	return nil
}

// GetTransfer returns a transfer by id
func (s *TransferService) GetTransfer(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	var t *domain.Transfer
	err := s.UoW.Do(ctx, func(ctx context.Context, st domain.Store) error {
		var err error
		t, err = st.Transfers().GetByID(ctx, id)
		return err
	})
	return t, err
}

func checkFunds(ctx context.Context, wallets domain.WalletRepository, t *domain.Transfer) error {
	sender, err := wallets.GetByID(ctx, t.SenderWalletID)
	if err != nil {
		return err
	}
	if _, err := wallets.GetByID(ctx, t.ReceiverWalletID); err != nil {
		return err
	}
	if sender.Balance.LessThan(t.Amount) {
		return fmt.Errorf("%w: wallet %s holds %s, transfer needs %s",
			domain.ErrInsufficientFunds, sender.ID, sender.Balance.StringFixed(domain.MoneyScale), t.Amount.StringFixed(domain.MoneyScale))
	}
	return nil
}

// applyTransfer applies the transfer's effect with the given sign: +1 records it, -1 reverts it
func applyTransfer(ctx context.Context, wallets domain.WalletRepository, t *domain.Transfer, sign decimal.Decimal) error {
	amount := t.Amount.Mul(sign)
	if err := ledger.ApplyBalanceDelta(ctx, wallets, t.SenderWalletID, amount.Neg()); err != nil {
		return err
	}
	return ledger.ApplyBalanceDelta(ctx, wallets, t.ReceiverWalletID, amount)
}

func (s *TransferService) publish(ctx context.Context, t *domain.Transfer) {
	if s.Publisher == nil {
		return
	}
	event := domain.TransferCompleted{
		TransferID:       t.ID.String(),
		SenderWalletID:   t.SenderWalletID.String(),
		ReceiverWalletID: t.ReceiverWalletID.String(),
		Amount:           t.Amount.StringFixed(domain.MoneyScale),
		Date:             t.Date,
	}
	if err := s.Publisher.Publish(ctx, domain.TopicTransferCompleted, event); err != nil {
		s.Log.ErrorContext(ctx, "failed to publish event",
			logger.FieldTopic, domain.TopicTransferCompleted,
			logger.FieldTransferID, t.ID,
			logger.FieldError, err,
		)
	}
}
