package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// DB wraps the database connection and implements domain.UnitOfWork
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
// connectionString should be in the format: "host=localhost port=5432 user=postgres password=postgres dbname=walletledger sslmode=disable"
func NewDB(connectionString string) (*DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Do runs fn inside a single database transaction. The transaction commits
// only when fn returns nil.
func (db *DB) Do(ctx context.Context, fn func(ctx context.Context, st domain.Store) error) error {
	dbTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := fn(ctx, &txStore{q: dbTx}); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// queryer is the subset of *sql.Tx the repositories use
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txStore binds every repository to one transaction
type txStore struct {
	q queryer
}

func (t *txStore) Wallets() domain.WalletRepository         { return &walletRepository{q: t.q} }
func (t *txStore) Entries() domain.EntryRepository          { return &entryRepository{q: t.q} }
func (t *txStore) Transfers() domain.TransferRepository     { return &transferRepository{q: t.q} }
func (t *txStore) Operators() domain.OperatorRepository     { return &operatorRepository{q: t.q} }
func (t *txStore) CreditCards() domain.CreditCardRepository { return &creditCardRepository{q: t.q} }
func (t *txStore) Credits() domain.CreditRepository         { return &creditRepository{q: t.q} }
func (t *txStore) Debts() domain.DebtRepository             { return &debtRepository{q: t.q} }
func (t *txStore) Payments() domain.PaymentRepository       { return &paymentRepository{q: t.q} }
