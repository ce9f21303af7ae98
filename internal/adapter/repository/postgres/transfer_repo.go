package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// transferRepository implements domain.TransferRepository
type transferRepository struct {
	q queryer
}

// GetByID retrieves a transfer by its ID
func (r *transferRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `
		SELECT id, sender_wallet_id, receiver_wallet_id, category_id, amount, date, description
		FROM transfers
		WHERE id = $1
	`

	var t domain.Transfer
	var categoryID sql.NullString
	var amountStr string
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.SenderWalletID,
		&t.ReceiverWalletID,
		&categoryID,
		&amountStr,
		&t.Date,
		&t.Description,
	)
	if err != nil {
		return nil, notFound(err, "transfer", id)
	}

	if t.CategoryID, err = parseNullUUID(categoryID, "category_id"); err != nil {
		return nil, err
	}
	if t.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create creates a new transfer
func (r *transferRepository) Create(ctx context.Context, t *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, sender_wallet_id, receiver_wallet_id, category_id, amount, date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		t.ID,
		t.SenderWalletID,
		t.ReceiverWalletID,
		nullUUID(t.CategoryID),
		t.Amount.String(),
		t.Date,
		t.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// Update overwrites a transfer
func (r *transferRepository) Update(ctx context.Context, t *domain.Transfer) error {
	query := `
		UPDATE transfers
		SET sender_wallet_id = $2, receiver_wallet_id = $3, category_id = $4, amount = $5, date = $6, description = $7
		WHERE id = $1
	`

	res, err := r.q.ExecContext(ctx, query,
		t.ID,
		t.SenderWalletID,
		t.ReceiverWalletID,
		nullUUID(t.CategoryID),
		t.Amount.String(),
		t.Date,
		t.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	return expectOne(res, "transfer", t.ID)
}

// Delete removes a transfer
func (r *transferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return expectOne(res, "transfer", id)
}

// CountByWallet returns how many transfers have the wallet on either side
func (r *transferRepository) CountByWallet(ctx context.Context, walletID uuid.UUID) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM transfers WHERE sender_wallet_id = $1 OR receiver_wallet_id = $1`, walletID)
}
