package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
)

var (
	invoiceCardID   string
	invoiceMonth    string
	invoiceWalletID string
	invoiceRebate   string
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Inspect and pay credit card invoices",
}

var invoiceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status and amount of a card's invoice month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &walletledgerv1.InvoiceRequest{CreditCardId: invoiceCardID, Month: invoiceMonth}
		return dial(cmd, func(ctx context.Context, c walletledgerv1.LedgerServiceClient) error {
			st, err := c.InvoiceStatus(ctx, req)
			if err != nil {
				return err
			}
			amount, err := c.InvoiceAmount(ctx, req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", invoiceMonth, st.Status, amount.Amount)
			return err
		})
	},
}

var invoicePayCmd = &cobra.Command{
	Use:   "pay",
	Short: "Settle every pending installment of a card's invoice month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return dial(cmd, func(ctx context.Context, c walletledgerv1.LedgerServiceClient) error {
			resp, err := c.PayInvoice(ctx, &walletledgerv1.PayInvoiceRequest{
				CreditCardId: invoiceCardID,
				WalletId:     invoiceWalletID,
				Month:        invoiceMonth,
				Rebate:       invoiceRebate,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		})
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceStatusCmd)
	invoiceCmd.AddCommand(invoicePayCmd)

	invoiceCmd.PersistentFlags().StringVar(&invoiceCardID, "card", "", "Credit card id.")
	invoiceCmd.PersistentFlags().StringVar(&invoiceMonth, "month", "", "Invoice month as YYYY-MM.")
	_ = invoiceCmd.MarkPersistentFlagRequired("card")
	_ = invoiceCmd.MarkPersistentFlagRequired("month")

	invoicePayCmd.Flags().StringVar(&invoiceWalletID, "wallet", "", "Wallet paying the invoice.")
	invoicePayCmd.Flags().StringVar(&invoiceRebate, "rebate", "", "Part of the card's available rebate to spend on the invoice.")
	_ = invoicePayCmd.MarkFlagRequired("wallet")
}
