package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/walletledger-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "validation", err: domain.Validationf("amount must be positive"), want: codes.InvalidArgument},
		{name: "not found", err: domain.NotFoundf("wallet x"), want: codes.NotFound},
		{name: "wrapped not found", err: fmt.Errorf("pay invoice: %w", domain.NotFoundf("card")), want: codes.NotFound},
		{name: "version mismatch", err: fmt.Errorf("%w: wallet x", domain.ErrVersionMismatch), want: codes.Aborted},
		{name: "conflict", err: domain.Conflictf("name taken"), want: codes.FailedPrecondition},
		{name: "same endpoint", err: domain.ErrSameEndpoint, want: codes.FailedPrecondition},
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, want: codes.FailedPrecondition},
		{name: "insufficient credit", err: domain.ErrInsufficientCredit, want: codes.FailedPrecondition},
		{name: "insufficient rebate", err: domain.ErrInsufficientRebate, want: codes.FailedPrecondition},
		{name: "fatal state", err: domain.FatalStatef("unknown status"), want: codes.Internal},
		{name: "unknown", err: errors.New("disk on fire"), want: codes.Internal},
		{name: "canceled", err: context.Canceled, want: codes.Canceled},
		{name: "status passes through", err: status.Error(codes.Unauthenticated, "nope"), want: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.Equal(t, tt.want, status.Code(got))
		})
	}

	assert.NoError(t, mapError(nil))
}
