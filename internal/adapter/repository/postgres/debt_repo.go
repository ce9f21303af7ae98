package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// debtRepository implements domain.DebtRepository
type debtRepository struct {
	q queryer
}

// GetByID retrieves a debt by its ID
func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCardDebt, error) {
	query := `
		SELECT id, credit_card_id, category_id, total_amount, installments, register_date, description
		FROM credit_card_debts
		WHERE id = $1
	`

	var d domain.CreditCardDebt
	var totalStr string
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&d.ID,
		&d.CreditCardID,
		&d.CategoryID,
		&totalStr,
		&d.Installments,
		&d.RegisterDate,
		&d.Description,
	)
	if err != nil {
		return nil, notFound(err, "debt", id)
	}

	if d.TotalAmount, err = parseDecimal(totalStr, "total_amount"); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create creates a new debt
func (r *debtRepository) Create(ctx context.Context, d *domain.CreditCardDebt) error {
	query := `
		INSERT INTO credit_card_debts (id, credit_card_id, category_id, total_amount, installments, register_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q.ExecContext(ctx, query,
		d.ID,
		d.CreditCardID,
		d.CategoryID,
		d.TotalAmount.String(),
		d.Installments,
		d.RegisterDate,
		d.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create debt: %w", err)
	}
	return nil
}

// Update overwrites a debt
func (r *debtRepository) Update(ctx context.Context, d *domain.CreditCardDebt) error {
	query := `
		UPDATE credit_card_debts
		SET credit_card_id = $2, category_id = $3, total_amount = $4, installments = $5,
		    register_date = $6, description = $7
		WHERE id = $1
	`

	res, err := r.q.ExecContext(ctx, query,
		d.ID,
		d.CreditCardID,
		d.CategoryID,
		d.TotalAmount.String(),
		d.Installments,
		d.RegisterDate,
		d.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return expectOne(res, "debt", d.ID)
}

// Delete removes a debt. Its payments must already be gone.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM credit_card_debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return expectOne(res, "debt", id)
}

// CountByCard returns how many debts were registered on the card
func (r *debtRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM credit_card_debts WHERE credit_card_id = $1`, cardID)
}
