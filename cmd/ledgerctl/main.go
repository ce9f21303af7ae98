// Command ledgerctl administers a walletledger deployment: it applies
// database migrations, seeds the operator catalogue and queries invoices
// over gRPC.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
