package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// Fixed UUIDs for the operator catalogue. They never change so cards keep
// pointing at the same operator across deployments.
var (
	OperatorVisa       = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	OperatorMastercard = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	OperatorAmex       = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	OperatorElo        = uuid.MustParse("00000000-0000-0000-0000-000000000104")
	OperatorHipercard  = uuid.MustParse("00000000-0000-0000-0000-000000000105")
)

// Operators returns the catalogue the seeder maintains
func Operators() []domain.CreditCardOperator {
	return []domain.CreditCardOperator{
		{ID: OperatorVisa, Name: "Visa"},
		{ID: OperatorMastercard, Name: "Mastercard"},
		{ID: OperatorAmex, Name: "American Express"},
		{ID: OperatorElo, Name: "Elo"},
		{ID: OperatorHipercard, Name: "Hipercard"},
	}
}

// OperatorSeeder handles seeding of the credit card operator catalogue
type OperatorSeeder struct {
	uow domain.UnitOfWork
	log *logger.Logger
}

// NewOperatorSeeder creates a new OperatorSeeder instance
func NewOperatorSeeder(uow domain.UnitOfWork, log *logger.Logger) *OperatorSeeder {
	return &OperatorSeeder{
		uow: uow,
		log: log.WithComponent(logger.ComponentSeeder),
	}
}

// Seed ensures every catalogue operator exists.
// Missing operators are created; existing ones are left untouched.
func (s *OperatorSeeder) Seed(ctx context.Context) error {
	created := 0
	err := s.uow.Do(ctx, func(ctx context.Context, st domain.Store) error {
		for _, op := range Operators() {
			_, err := st.Operators().GetByID(ctx, op.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("failed to look up operator %s: %w", op.Name, err)
			}

			if err := st.Operators().Create(ctx, &op); err != nil {
				return fmt.Errorf("failed to create operator %s: %w", op.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "operator catalogue seeded", "created", created)
	return nil
}
