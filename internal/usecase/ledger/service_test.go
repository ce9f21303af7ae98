package ledger

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/walletledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*LedgerService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewLedgerService(store, logger.Discard()), store
}

func seedWallet(t *testing.T, store *memory.Store, balance string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		return st.Wallets().Create(ctx, &domain.Wallet{
			ID:      id,
			Name:    "wallet-" + id.String()[:8],
			Purpose: domain.WalletPurposeGeneral,
			Balance: dec(balance),
		})
	})
	require.NoError(t, err)
	return id
}

func balanceOf(t *testing.T, store *memory.Store, id uuid.UUID) decimal.Decimal {
	t.Helper()
	var balance decimal.Decimal
	err := store.Do(context.Background(), func(ctx context.Context, st domain.Store) error {
		w, err := st.Wallets().GetByID(ctx, id)
		if err != nil {
			return err
		}
		balance = w.Balance
		return nil
	})
	require.NoError(t, err)
	return balance
}

func assertBalance(t *testing.T, store *memory.Store, id uuid.UUID, want string) {
	t.Helper()
	got := balanceOf(t, store, id)
	assert.True(t, got.Equal(dec(want)), "balance: want %s, got %s", want, got)
}

func expense(walletID uuid.UUID, amount string, status domain.EntryStatus) AddEntryInput {
	return AddEntryInput{
		WalletID:    walletID,
		CategoryID:  uuid.New(),
		Kind:        domain.EntryKindExpense,
		Status:      status,
		Amount:      dec(amount),
		Date:        time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC),
		Description: "groceries",
	}
}

func updateFrom(t *testing.T, svc *LedgerService, id uuid.UUID) UpdateEntryInput {
	t.Helper()
	e, err := svc.GetEntry(context.Background(), id)
	require.NoError(t, err)
	return UpdateEntryInput{
		ID:          e.ID,
		WalletID:    e.WalletID,
		CategoryID:  e.CategoryID,
		Kind:        e.Kind,
		Status:      e.Status,
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
	}
}

func TestAddEntry_ConfirmedExpenseDebitsWallet(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "500.00")

	id, err := svc.AddExpense(context.Background(), expense(w, "200.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assertBalance(t, store, w, "300.00")
}

func TestAddEntry_PendingHasNoEffect(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "500.00")

	_, err := svc.AddIncome(context.Background(), expense(w, "200.00", domain.EntryStatusPending))
	require.NoError(t, err)
	assertBalance(t, store, w, "500.00")
}

func TestAddEntry_RoundsHalfUp(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "0")

	in := expense(w, "10.005", domain.EntryStatusConfirmed)
	in.Kind = domain.EntryKindIncome
	id, err := svc.AddEntry(context.Background(), in)
	require.NoError(t, err)

	e, err := svc.GetEntry(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, e.Amount.Equal(dec("10.01")))
	assertBalance(t, store, w, "10.01")
}

func TestAddEntry_Errors(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")

	_, err := svc.AddExpense(context.Background(), expense(w, "0", domain.EntryStatusConfirmed))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddExpense(context.Background(), expense(w, "-4", domain.EntryStatusConfirmed))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddExpense(context.Background(), expense(uuid.New(), "4", domain.EntryStatusConfirmed))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := expense(w, "4", domain.EntryStatusConfirmed)
	in.Kind = "TRANSFER"
	_, err = svc.AddEntry(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrFatalState)

	assertBalance(t, store, w, "100.00")
}

func TestDeleteEntry(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")
	ctx := context.Background()

	confirmed, err := svc.AddExpense(ctx, expense(w, "30.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)
	pending, err := svc.AddExpense(ctx, expense(w, "50.00", domain.EntryStatusPending))
	require.NoError(t, err)
	assertBalance(t, store, w, "70.00")

	require.NoError(t, svc.DeleteEntry(ctx, confirmed))
	assertBalance(t, store, w, "100.00")

	require.NoError(t, svc.DeleteEntry(ctx, pending))
	assertBalance(t, store, w, "100.00")

	_, err = svc.GetEntry(ctx, confirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteEntry(ctx, confirmed), domain.ErrNotFound)
}

func TestConfirmEntry(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(w, "40.00", domain.EntryStatusPending))
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmEntry(ctx, id))
	assertBalance(t, store, w, "60.00")

	err = svc.ConfirmEntry(ctx, id)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assertBalance(t, store, w, "60.00")

	assert.ErrorIs(t, svc.ConfirmEntry(ctx, uuid.New()), domain.ErrNotFound)
}

func TestUpdateEntry_ExpenseToIncomeSwingsTwice(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "500.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(w, "200.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)
	assertBalance(t, store, w, "300.00")

	in := updateFrom(t, svc, id)
	in.Kind = domain.EntryKindIncome
	require.NoError(t, svc.UpdateEntry(ctx, in))
	assertBalance(t, store, w, "700.00")
}

func TestUpdateEntry_ChangeWalletMovesEffect(t *testing.T) {
	svc, store := newTestService(t)
	from := seedWallet(t, store, "100.00")
	to := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(from, "25.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)

	in := updateFrom(t, svc, id)
	in.WalletID = to
	require.NoError(t, svc.UpdateEntry(ctx, in))

	assertBalance(t, store, from, "100.00")
	assertBalance(t, store, to, "75.00")
}

func TestUpdateEntry_ChangeAmountAppliesDifference(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(w, "25.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)

	in := updateFrom(t, svc, id)
	in.Amount = dec("40.00")
	require.NoError(t, svc.UpdateEntry(ctx, in))
	assertBalance(t, store, w, "60.00")

	in.Amount = dec("10.00")
	require.NoError(t, svc.UpdateEntry(ctx, in))
	assertBalance(t, store, w, "90.00")
}

func TestUpdateEntry_ChangeStatus(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(w, "25.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)

	in := updateFrom(t, svc, id)
	in.Status = domain.EntryStatusPending
	require.NoError(t, svc.UpdateEntry(ctx, in))
	assertBalance(t, store, w, "100.00")

	in.Status = domain.EntryStatusConfirmed
	require.NoError(t, svc.UpdateEntry(ctx, in))
	assertBalance(t, store, w, "75.00")
}

func TestUpdateEntry_AllFieldsAtOnce(t *testing.T) {
	svc, store := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "100.00")
	ctx := context.Background()

	// pending expense 10 on A becomes a confirmed income 30 on B
	id, err := svc.AddExpense(ctx, expense(a, "10.00", domain.EntryStatusPending))
	require.NoError(t, err)

	in := updateFrom(t, svc, id)
	in.WalletID = b
	in.Kind = domain.EntryKindIncome
	in.Amount = dec("30.00")
	in.Status = domain.EntryStatusConfirmed
	in.Description = "refund"
	require.NoError(t, svc.UpdateEntry(ctx, in))

	assertBalance(t, store, a, "100.00")
	assertBalance(t, store, b, "130.00")

	e, err := svc.GetEntry(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "refund", e.Description)
	assert.Equal(t, domain.EntryKindIncome, e.Kind)
}

func TestUpdateEntry_UnknownEnumeratorIsFatalAndAtomic(t *testing.T) {
	svc, store := newTestService(t)
	a := seedWallet(t, store, "100.00")
	b := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(a, "10.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)

	// wallet change is applied first, then the kind change fails: nothing may stick
	in := updateFrom(t, svc, id)
	in.WalletID = b
	in.Kind = "REFUND"
	err = svc.UpdateEntry(ctx, in)
	assert.ErrorIs(t, err, domain.ErrFatalState)
	assertBalance(t, store, a, "90.00")
	assertBalance(t, store, b, "100.00")

	in = updateFrom(t, svc, id)
	in.Status = "VOID"
	assert.ErrorIs(t, svc.UpdateEntry(ctx, in), domain.ErrFatalState)
}

func TestUpdateEntry_Errors(t *testing.T) {
	svc, store := newTestService(t)
	w := seedWallet(t, store, "100.00")
	ctx := context.Background()

	id, err := svc.AddExpense(ctx, expense(w, "10.00", domain.EntryStatusConfirmed))
	require.NoError(t, err)

	in := updateFrom(t, svc, id)
	in.Amount = dec("0.004")
	assert.ErrorIs(t, svc.UpdateEntry(ctx, in), domain.ErrValidation)

	in = updateFrom(t, svc, id)
	in.WalletID = uuid.New()
	assert.ErrorIs(t, svc.UpdateEntry(ctx, in), domain.ErrNotFound)

	in = updateFrom(t, svc, id)
	in.ID = uuid.New()
	assert.ErrorIs(t, svc.UpdateEntry(ctx, in), domain.ErrNotFound)
}

// Balance conservation: after any sequence of edits, each wallet equals its
// initial balance plus the signed amounts of its currently confirmed entries.
func TestBalanceConservation_RandomEdits(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	wallets := []uuid.UUID{seedWallet(t, store, "1000.00"), seedWallet(t, store, "250.00"), seedWallet(t, store, "0")}
	initial := map[uuid.UUID]decimal.Decimal{
		wallets[0]: dec("1000.00"),
		wallets[1]: dec("250.00"),
		wallets[2]: dec("0"),
	}

	rng := rand.New(rand.NewSource(42))
	kinds := []domain.EntryKind{domain.EntryKindIncome, domain.EntryKindExpense}
	statuses := []domain.EntryStatus{domain.EntryStatusPending, domain.EntryStatusConfirmed}
	randomAmount := func() decimal.Decimal {
		return decimal.New(int64(rng.Intn(100000)+1), -2)
	}

	var live []uuid.UUID
	for step := 0; step < 300; step++ {
		switch op := rng.Intn(4); {
		case op == 0 || len(live) == 0:
			id, err := svc.AddEntry(ctx, AddEntryInput{
				WalletID: wallets[rng.Intn(len(wallets))],
				Kind:     kinds[rng.Intn(2)],
				Status:   statuses[rng.Intn(2)],
				Amount:   randomAmount(),
			})
			require.NoError(t, err)
			live = append(live, id)
		case op == 1:
			i := rng.Intn(len(live))
			require.NoError(t, svc.DeleteEntry(ctx, live[i]))
			live = append(live[:i], live[i+1:]...)
		case op == 2:
			err := svc.ConfirmEntry(ctx, live[rng.Intn(len(live))])
			if err != nil {
				require.ErrorIs(t, err, domain.ErrConflict)
			}
		default:
			in := updateFrom(t, svc, live[rng.Intn(len(live))])
			if rng.Intn(2) == 0 {
				in.WalletID = wallets[rng.Intn(len(wallets))]
			}
			if rng.Intn(2) == 0 {
				in.Kind = kinds[rng.Intn(2)]
			}
			if rng.Intn(2) == 0 {
				in.Amount = randomAmount()
			}
			if rng.Intn(2) == 0 {
				in.Status = statuses[rng.Intn(2)]
			}
			require.NoError(t, svc.UpdateEntry(ctx, in))
		}
	}

	expected := make(map[uuid.UUID]decimal.Decimal)
	for id, b := range initial {
		expected[id] = b
	}
	for _, id := range live {
		e, err := svc.GetEntry(ctx, id)
		require.NoError(t, err)
		effect, err := e.BalanceEffect()
		require.NoError(t, err)
		expected[e.WalletID] = expected[e.WalletID].Add(effect)
	}
	for _, id := range wallets {
		got := balanceOf(t, store, id)
		assert.True(t, got.Equal(expected[id]), "wallet %s: want %s, got %s", id, expected[id], got)
	}
}

// MockWalletRepository is a mock implementation of WalletRepository for testing
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletRepository) List(ctx context.Context) ([]*domain.Wallet, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *domain.Wallet) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWalletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestApplyBalanceDelta_ZeroDeltaDoesNotTouchStore(t *testing.T) {
	repo := new(MockWalletRepository)

	err := ApplyBalanceDelta(context.Background(), repo, uuid.New(), decimal.Zero)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyBalanceDelta_UpdatesBalance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockWalletRepository)
	id := uuid.New()
	wallet := &domain.Wallet{ID: id, Name: "Checking", Balance: dec("10.00")}

	repo.On("GetByID", ctx, id).Return(wallet, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(w *domain.Wallet) bool {
		return w.ID == id && w.Balance.Equal(dec("7.50"))
	})).Return(nil)

	require.NoError(t, ApplyBalanceDelta(ctx, repo, id, dec("-2.50")))
	repo.AssertExpectations(t)
}

func TestApplyBalanceDelta_PropagatesVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := new(MockWalletRepository)
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(&domain.Wallet{ID: id, Balance: dec("10.00")}, nil)
	repo.On("Update", ctx, mock.Anything).Return(domain.ErrVersionMismatch)

	err := ApplyBalanceDelta(ctx, repo, id, dec("1"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}
