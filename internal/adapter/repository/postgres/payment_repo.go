package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// paymentRepository implements domain.PaymentRepository
type paymentRepository struct {
	q queryer
}

const paymentColumns = `p.id, p.debt_id, p.installment, p.amount, p.due_date, p.wallet_id, p.rebate_used, p.version`

// Payments are joined with their debt so card-scoped queries can filter on it
const paymentsByCard = `
	FROM credit_card_payments p
	JOIN credit_card_debts d ON d.id = p.debt_id
	WHERE d.credit_card_id = $1
`

// monthBounds returns the half-open interval [start, end) of an invoice month.
// Due dates are stored as wall-clock TIMESTAMP, so the bounds are too.
func monthBounds(month domain.YearMonth) (time.Time, time.Time) {
	start := time.Date(month.Year, month.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func scanPayment(row rowScanner) (*domain.CreditCardPayment, error) {
	var p domain.CreditCardPayment
	var amountStr, rebateStr string
	var walletID sql.NullString
	err := row.Scan(
		&p.ID,
		&p.DebtID,
		&p.Installment,
		&amountStr,
		&p.DueDate,
		&walletID,
		&rebateStr,
		&p.Version,
	)
	if err != nil {
		return nil, err
	}
	if p.Amount, err = parseDecimal(amountStr, "amount"); err != nil {
		return nil, err
	}
	if p.WalletID, err = parseNullUUID(walletID, "wallet_id"); err != nil {
		return nil, err
	}
	if p.RebateUsed, err = parseDecimal(rebateStr, "rebate_used"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.CreditCardPayment, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.CreditCardPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) sum(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var totalStr string
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&totalStr); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return parseDecimal(totalStr, "sum")
}

// GetByID retrieves a payment by its ID
func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCardPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM credit_card_payments p WHERE p.id = $1`

	p, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err, "payment", id)
	}
	return p, nil
}

// Create creates a new payment
func (r *paymentRepository) Create(ctx context.Context, p *domain.CreditCardPayment) error {
	query := `
		INSERT INTO credit_card_payments (id, debt_id, installment, amount, due_date, wallet_id, rebate_used, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		p.ID,
		p.DebtID,
		p.Installment,
		p.Amount.String(),
		p.DueDate,
		nullUUID(p.WalletID),
		p.RebateUsed.String(),
		p.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// Update is a compare-and-swap on the payment version
func (r *paymentRepository) Update(ctx context.Context, p *domain.CreditCardPayment) error {
	query := `
		UPDATE credit_card_payments
		SET installment = $3, amount = $4, due_date = $5, wallet_id = $6, rebate_used = $7, version = version + 1
		WHERE id = $1 AND version = $2
	`

	res, err := r.q.ExecContext(ctx, query,
		p.ID,
		p.Version,
		p.Installment,
		p.Amount.String(),
		p.DueDate,
		nullUUID(p.WalletID),
		p.RebateUsed.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	err = compareAndSwap(res, "payment", p.ID, func() (bool, error) {
		return rowExists(ctx, r.q, `SELECT EXISTS (SELECT 1 FROM credit_card_payments WHERE id = $1)`, p.ID)
	})
	if err != nil {
		return err
	}
	p.Version++
	return nil
}

// Delete removes a payment
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM credit_card_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return expectOne(res, "payment", id)
}

// ListByDebt returns the debt's payments ordered by installment number
func (r *paymentRepository) ListByDebt(ctx context.Context, debtID uuid.UUID) ([]*domain.CreditCardPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM credit_card_payments p WHERE p.debt_id = $1 ORDER BY p.installment`
	return r.list(ctx, query, debtID)
}

// ListPendingByCardAndMonth returns the card's unpaid payments due in the month
func (r *paymentRepository) ListPendingByCardAndMonth(ctx context.Context, cardID uuid.UUID, month domain.YearMonth) ([]*domain.CreditCardPayment, error) {
	start, end := monthBounds(month)
	query := `SELECT ` + paymentColumns + paymentsByCard + `
		AND p.wallet_id IS NULL AND p.due_date >= $2 AND p.due_date < $3
		ORDER BY p.due_date, p.installment`
	return r.list(ctx, query, cardID, start, end)
}

// ListPendingByCardFrom returns the card's unpaid payments due at or after from
func (r *paymentRepository) ListPendingByCardFrom(ctx context.Context, cardID uuid.UUID, from time.Time) ([]*domain.CreditCardPayment, error) {
	query := `SELECT ` + paymentColumns + paymentsByCard + `
		AND p.wallet_id IS NULL AND p.due_date >= $2
		ORDER BY p.due_date, p.installment`
	return r.list(ctx, query, cardID, from)
}

// CountPendingByCard returns how many unpaid payments the card has
func (r *paymentRepository) CountPendingByCard(ctx context.Context, cardID uuid.UUID) (int, error) {
	return count(ctx, r.q, `SELECT COUNT(*)`+paymentsByCard+` AND p.wallet_id IS NULL`, cardID)
}

// SumPendingByCard returns the total of the card's unpaid payments
func (r *paymentRepository) SumPendingByCard(ctx context.Context, cardID uuid.UUID) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(p.amount), 0)`+paymentsByCard+` AND p.wallet_id IS NULL`, cardID)
}

// SumByCardAndMonth returns the total of the card's payments due in the month, paid or not
func (r *paymentRepository) SumByCardAndMonth(ctx context.Context, cardID uuid.UUID, month domain.YearMonth) (decimal.Decimal, error) {
	start, end := monthBounds(month)
	return r.sum(ctx, `SELECT COALESCE(SUM(p.amount), 0)`+paymentsByCard+` AND p.due_date >= $2 AND p.due_date < $3`, cardID, start, end)
}

// SumPending returns the total of every unpaid payment
func (r *paymentRepository) SumPending(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, `SELECT COALESCE(SUM(amount), 0) FROM credit_card_payments WHERE wallet_id IS NULL`)
}

// EarliestPendingDueDate returns the earliest unpaid due date of the card, or nil
func (r *paymentRepository) EarliestPendingDueDate(ctx context.Context, cardID uuid.UUID) (*time.Time, error) {
	var earliest sql.NullTime
	err := r.q.QueryRowContext(ctx, `SELECT MIN(p.due_date)`+paymentsByCard+` AND p.wallet_id IS NULL`, cardID).Scan(&earliest)
	if err != nil {
		return nil, fmt.Errorf("failed to get earliest pending due date: %w", err)
	}
	if !earliest.Valid {
		return nil, nil
	}
	return &earliest.Time, nil
}
