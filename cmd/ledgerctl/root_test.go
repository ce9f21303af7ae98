package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"migrate"}, want: "migrate"},
		{args: []string{"seed"}, want: "seed"},
		{args: []string{"invoice", "status"}, want: "status"},
		{args: []string{"invoice", "pay"}, want: "pay"},
		{args: []string{"overview"}, want: "overview"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cmd, _, err := rootCmd.Find(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Name())
		})
	}
}

func TestInvoicePayRequiresWallet(t *testing.T) {
	assert.NotNil(t, invoicePayCmd.Flags().Lookup("wallet"))
	assert.NotNil(t, invoicePayCmd.Flags().Lookup("rebate"))
	assert.NotNil(t, invoiceCmd.PersistentFlags().Lookup("card"))
	assert.NotNil(t, invoiceCmd.PersistentFlags().Lookup("month"))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	resp := &walletledgerv1.PayInvoiceResponse{Total: "33.34", Rebate: "0.00", PaymentIds: []string{"p1"}}
	require.NoError(t, printJSON(&buf, resp))
	assert.JSONEq(t, `{"total":"33.34","rebate":"0.00","payment_ids":["p1"]}`, buf.String())
}
