package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// operatorRepository implements domain.OperatorRepository
type operatorRepository struct {
	q queryer
}

// GetByID retrieves an operator by its ID
func (r *operatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCardOperator, error) {
	var op domain.CreditCardOperator
	err := r.q.QueryRowContext(ctx, `SELECT id, name FROM credit_card_operators WHERE id = $1`, id).Scan(&op.ID, &op.Name)
	if err != nil {
		return nil, notFound(err, "operator", id)
	}
	return &op, nil
}

// Create creates a new operator
func (r *operatorRepository) Create(ctx context.Context, op *domain.CreditCardOperator) error {
	_, err := r.q.ExecContext(ctx, `INSERT INTO credit_card_operators (id, name) VALUES ($1, $2)`, op.ID, op.Name)
	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

// List retrieves every operator ordered by name
func (r *operatorRepository) List(ctx context.Context) ([]*domain.CreditCardOperator, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM credit_card_operators ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	defer rows.Close()

	var operators []*domain.CreditCardOperator
	for rows.Next() {
		var op domain.CreditCardOperator
		if err := rows.Scan(&op.ID, &op.Name); err != nil {
			return nil, fmt.Errorf("failed to scan operator: %w", err)
		}
		operators = append(operators, &op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operators: %w", err)
	}
	return operators, nil
}

// creditCardRepository implements domain.CreditCardRepository
type creditCardRepository struct {
	q queryer
}

const creditCardColumns = `id, name, billing_due_day, closing_day, max_debt, last_four_digits, operator_id, default_billing_wallet_id, available_rebate, archived`

func scanCreditCard(row rowScanner) (*domain.CreditCard, error) {
	var c domain.CreditCard
	var maxDebtStr, rebateStr string
	var walletID sql.NullString
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.BillingDueDay,
		&c.ClosingDay,
		&maxDebtStr,
		&c.LastFourDigits,
		&c.OperatorID,
		&walletID,
		&rebateStr,
		&c.Archived,
	)
	if err != nil {
		return nil, err
	}
	if c.MaxDebt, err = parseDecimal(maxDebtStr, "max_debt"); err != nil {
		return nil, err
	}
	if c.AvailableRebate, err = parseDecimal(rebateStr, "available_rebate"); err != nil {
		return nil, err
	}
	if c.DefaultBillingWalletID, err = parseNullUUID(walletID, "default_billing_wallet_id"); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a credit card by its ID
func (r *creditCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM credit_cards WHERE id = $1`

	c, err := scanCreditCard(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "credit card", id)
	}
	return c, nil
}

// ExistsByName reports whether a card with the given name exists
func (r *creditCardRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return rowExists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM credit_cards WHERE name = $1)`, name)
}

// List retrieves every credit card ordered by name
func (r *creditCardRepository) List(ctx context.Context) ([]*domain.CreditCard, error) {
	query := `SELECT ` + creditCardColumns + ` FROM credit_cards ORDER BY name`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.CreditCard
	for rows.Next() {
		c, err := scanCreditCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit cards: %w", err)
	}
	return cards, nil
}

// Create creates a new credit card
func (r *creditCardRepository) Create(ctx context.Context, c *domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (` + creditCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.q.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.BillingDueDay,
		c.ClosingDay,
		c.MaxDebt.String(),
		c.LastFourDigits,
		c.OperatorID,
		nullUUID(c.DefaultBillingWalletID),
		c.AvailableRebate.String(),
		c.Archived,
	)
	if err != nil {
		return fmt.Errorf("failed to create credit card: %w", err)
	}
	return nil
}

// Update overwrites a credit card
func (r *creditCardRepository) Update(ctx context.Context, c *domain.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET name = $2, billing_due_day = $3, closing_day = $4, max_debt = $5, last_four_digits = $6,
		    operator_id = $7, default_billing_wallet_id = $8, available_rebate = $9, archived = $10
		WHERE id = $1
	`

	res, err := r.q.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.BillingDueDay,
		c.ClosingDay,
		c.MaxDebt.String(),
		c.LastFourDigits,
		c.OperatorID,
		nullUUID(c.DefaultBillingWalletID),
		c.AvailableRebate.String(),
		c.Archived,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit card: %w", err)
	}
	return expectOne(res, "credit card", c.ID)
}

// Delete removes a credit card
func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	return expectOne(res, "credit card", id)
}
