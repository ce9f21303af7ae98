package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// creditRepository implements domain.CreditRepository
type creditRepository struct {
	q queryer
}

const creditColumns = `id, credit_card_id, type, amount, date, description`

func scanCredit(row rowScanner) (*domain.CreditCardCredit, error) {
	var c domain.CreditCardCredit
	var typ, amountStr string
	err := row.Scan(
		&c.ID,
		&c.CreditCardID,
		&typ,
		&amountStr,
		&c.Date,
		&c.Description,
	)
	if err != nil {
		return nil, err
	}
	if c.Type, err = domain.ParseCreditType(typ); err != nil {
		return nil, domain.FatalStatef("credit %s has type %q", c.ID, typ)
	}
	if c.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a credit by its ID
func (r *creditRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCardCredit, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_card_credits WHERE id = $1`

	c, err := scanCredit(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "credit", id)
	}
	return c, nil
}

// Create creates a new credit
func (r *creditRepository) Create(ctx context.Context, c *domain.CreditCardCredit) error {
	query := `
		INSERT INTO credit_card_credits (` + creditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		c.ID,
		c.CreditCardID,
		string(c.Type),
		c.Amount.String(),
		c.Date,
		c.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create credit: %w", err)
	}
	return nil
}

// Update overwrites a credit
func (r *creditRepository) Update(ctx context.Context, c *domain.CreditCardCredit) error {
	query := `
		UPDATE credit_card_credits
		SET credit_card_id = $2, type = $3, amount = $4, date = $5, description = $6
		WHERE id = $1
	`

	res, err := r.q.ExecContext(ctx, query,
		c.ID,
		c.CreditCardID,
		string(c.Type),
		c.Amount.String(),
		c.Date,
		c.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit: %w", err)
	}
	return expectOne(res, "credit", c.ID)
}

// Delete removes a credit
func (r *creditRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM credit_card_credits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete credit: %w", err)
	}
	return expectOne(res, "credit", id)
}

// ListByCard retrieves the card's credits ordered by date
func (r *creditRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.CreditCardCredit, error) {
	query := `SELECT ` + creditColumns + ` FROM credit_card_credits WHERE credit_card_id = $1 ORDER BY date, id`

	rows, err := r.q.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query credits: %w", err)
	}
	defer rows.Close()

	var credits []*domain.CreditCardCredit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credits: %w", err)
	}
	return credits, nil
}

// CountByCard returns how many credits were recorded on the card
func (r *creditRepository) CountByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*) FROM credit_card_credits WHERE credit_card_id = $1`, cardID)
}
