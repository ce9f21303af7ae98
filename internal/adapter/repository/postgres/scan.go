package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func parseDecimal(s string, column string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return d, nil
}

func parseNullUUID(s sql.NullString, column string) (*uuid.UUID, error) {
	if !s.Valid {
		return nil, nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return &id, nil
}

// nullUUID converts an optional id into a driver value
func nullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

// notFound maps sql.ErrNoRows onto domain.ErrNotFound
func notFound(err error, entity string, id uuid.UUID) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundf("%s %s does not exist", entity, id)
	}
	return fmt.Errorf("failed to get %s by ID: %w", entity, err)
}

// expectOne reports a missing row for statements addressed by primary key
func expectOne(res sql.Result, entity string, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.NotFoundf("%s %s does not exist", entity, id)
	}
	return nil
}

// compareAndSwap interprets the result of an UPDATE ... WHERE id = $1 AND version = $2.
// exists is consulted only when no row matched, to tell a stale version from a missing row.
func compareAndSwap(res sql.Result, entity string, id uuid.UUID, exists func() (bool, error)) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 1 {
		return nil
	}
	found, err := exists()
	if err != nil {
		return err
	}
	if !found {
		return domain.NotFoundf("%s %s does not exist", entity, id)
	}
	return fmt.Errorf("%w: %s %s", domain.ErrVersionMismatch, entity, id)
}

// rowExists runs a SELECT EXISTS query with a single argument
func rowExists(ctx context.Context, q queryer, query string, arg any) (bool, error) {
	var exists bool
	if err := q.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// count runs a SELECT COUNT(*) query
func count(ctx context.Context, q queryer, query string, args ...any) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
