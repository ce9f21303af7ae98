package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// state is one consistent snapshot of every table
type state struct {
	wallets   map[uuid.UUID]domain.Wallet
	entries   map[uuid.UUID]domain.LedgerEntry
	transfers map[uuid.UUID]domain.Transfer
	operators map[uuid.UUID]domain.CreditCardOperator
	cards     map[uuid.UUID]domain.CreditCard
	credits   map[uuid.UUID]domain.CreditCardCredit
	debts     map[uuid.UUID]domain.CreditCardDebt
	payments  map[uuid.UUID]domain.CreditCardPayment
}

func newState() *state {
	return &state{
		wallets:   make(map[uuid.UUID]domain.Wallet),
		entries:   make(map[uuid.UUID]domain.LedgerEntry),
		transfers: make(map[uuid.UUID]domain.Transfer),
		operators: make(map[uuid.UUID]domain.CreditCardOperator),
		cards:     make(map[uuid.UUID]domain.CreditCard),
		credits:   make(map[uuid.UUID]domain.CreditCardCredit),
		debts:     make(map[uuid.UUID]domain.CreditCardDebt),
		payments:  make(map[uuid.UUID]domain.CreditCardPayment),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.entries {
		c.entries[k] = v
	}
	for k, v := range s.transfers {
		c.transfers[k] = copyTransfer(v)
	}
	for k, v := range s.operators {
		c.operators[k] = v
	}
	for k, v := range s.cards {
		c.cards[k] = copyCard(v)
	}
	for k, v := range s.credits {
		c.credits[k] = v
	}
	for k, v := range s.debts {
		c.debts[k] = v
	}
	for k, v := range s.payments {
		c.payments[k] = copyPayment(v)
	}
	return c
}

// Store is an in-memory implementation of domain.UnitOfWork.
// Units of work are serialised by a mutex; each one runs against a private
// copy of the state which replaces the shared state only when fn succeeds.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{st: newState()}
}

// Do runs fn atomically against the store
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, st domain.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.st.clone()
	if err := fn(ctx, &txStore{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// txStore exposes the repositories bound to one working snapshot
type txStore struct {
	st *state
}

func (t *txStore) Wallets() domain.WalletRepository         { return walletRepo{t.st} }
func (t *txStore) Entries() domain.EntryRepository          { return entryRepo{t.st} }
func (t *txStore) Transfers() domain.TransferRepository     { return transferRepo{t.st} }
func (t *txStore) Operators() domain.OperatorRepository     { return operatorRepo{t.st} }
func (t *txStore) CreditCards() domain.CreditCardRepository { return cardRepo{t.st} }
func (t *txStore) Credits() domain.CreditRepository         { return creditRepo{t.st} }
func (t *txStore) Debts() domain.DebtRepository             { return debtRepo{t.st} }
func (t *txStore) Payments() domain.PaymentRepository       { return paymentRepo{t.st} }

var _ domain.UnitOfWork = (*Store)(nil)

func copyUUIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTransfer(t domain.Transfer) domain.Transfer {
	t.CategoryID = copyUUIDPtr(t.CategoryID)
	return t
}

func copyCard(c domain.CreditCard) domain.CreditCard {
	c.DefaultBillingWalletID = copyUUIDPtr(c.DefaultBillingWalletID)
	return c
}

func copyPayment(p domain.CreditCardPayment) domain.CreditCardPayment {
	p.WalletID = copyUUIDPtr(p.WalletID)
	return p
}
