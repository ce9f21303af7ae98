package main

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print total balance, pending installments and this month's invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return dial(cmd, func(ctx context.Context, c walletledgerv1.LedgerServiceClient) error {
			overview, err := c.GetOverview(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), overview)
		})
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}
