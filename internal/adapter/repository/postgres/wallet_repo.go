package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// walletRepository implements domain.WalletRepository
type walletRepository struct {
	q queryer
}

const walletColumns = `id, name, purpose, balance, archived, version`

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	var w domain.Wallet
	var balanceStr string
	if err := row.Scan(&w.ID, &w.Name, &w.Purpose, &balanceStr, &w.Archived, &w.Version); err != nil {
		return nil, err
	}
	balance, err := parseDecimal(balanceStr, "balance")
	if err != nil {
		return nil, err
	}
	w.Balance = balance
	return &w, nil
}

// GetByID retrieves a wallet by its ID
func (r *walletRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "wallet", id)
	}
	return w, nil
}

// ExistsByName reports whether a wallet with the given name exists
func (r *walletRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return rowExists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM wallets WHERE name = $1)`, name)
}

// List retrieves every wallet ordered by name
func (r *walletRepository) List(ctx context.Context) ([]*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallets: %w", err)
	}
	return wallets, nil
}

// Create creates a new wallet
func (r *walletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	query := `
		INSERT INTO wallets (id, name, purpose, balance, archived, version)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		w.ID,
		w.Name,
		string(w.Purpose),
		w.Balance.String(),
		w.Archived,
		w.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// Update persists the wallet if nobody changed it since it was read
func (r *walletRepository) Update(ctx context.Context, w *domain.Wallet) error {
	query := `
		UPDATE wallets
		SET name = $3, purpose = $4, balance = $5, archived = $6, version = version + 1
		WHERE id = $1 AND version = $2
	`

	res, err := r.q.ExecContext(ctx, query,
		w.ID,
		w.Version,
		w.Name,
		string(w.Purpose),
		w.Balance.String(),
		w.Archived,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	err = compareAndSwap(res, "wallet", w.ID, func() (bool, error) {
		return rowExists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM wallets WHERE id = $1)`, w.ID)
	})
	if err != nil {
		return err
	}
	w.Version++
	return nil
}

// Delete removes a wallet
func (r *walletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM wallets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return expectOne(res, "wallet", id)
}
