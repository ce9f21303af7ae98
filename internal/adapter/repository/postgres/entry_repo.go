package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// entryRepository implements domain.EntryRepository
type entryRepository struct {
	q queryer
}

// GetByID retrieves a ledger entry by its ID
func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerEntry, error) {
	query := `
		SELECT id, wallet_id, category_id, kind, status, amount, date, description, version
		FROM ledger_entries
		WHERE id = $1
	`

	var e domain.LedgerEntry
	var amountStr string
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.WalletID,
		&e.CategoryID,
		&e.Kind,
		&e.Status,
		&amountStr,
		&e.Date,
		&e.Description,
		&e.Version,
	)
	if err != nil {
		return nil, notFound(err, "entry", id)
	}

	if e.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create creates a new ledger entry
func (r *entryRepository) Create(ctx context.Context, e *domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, wallet_id, category_id, kind, status, amount, date, description, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.q.ExecContext(ctx, query,
		e.ID,
		e.WalletID,
		e.CategoryID,
		string(e.Kind),
		string(e.Status),
		e.Amount.String(),
		e.Date,
		e.Description,
		e.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// Update is a compare-and-swap on the entry version
func (r *entryRepository) Update(ctx context.Context, e *domain.LedgerEntry) error {
	query := `
		UPDATE ledger_entries
		SET wallet_id = $3, category_id = $4, kind = $5, status = $6, amount = $7,
		    date = $8, description = $9, version = version + 1
		WHERE id = $1 AND version = $2
	`

	res, err := r.q.ExecContext(ctx, query,
		e.ID,
		e.Version,
		e.WalletID,
		e.CategoryID,
		string(e.Kind),
		string(e.Status),
		e.Amount.String(),
		e.Date,
		e.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	err = compareAndSwap(res, "entry", e.ID, func() (bool, error) {
		return rowExists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE id = $1)`, e.ID)
	})
	if err != nil {
		return err
	}
	e.Version++
	return nil
}

// Delete removes a ledger entry
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return expectOne(res, "entry", id)
}

// CountByWallet returns how many entries belong to the wallet
func (r *entryRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM ledger_entries WHERE wallet_id = $1`, walletID)
}
