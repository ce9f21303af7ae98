package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	grpcadapter "github.com/simaogato/walletledger-backend/internal/adapter/grpc"
	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
	"github.com/simaogato/walletledger-backend/internal/config"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

var (
	serverAddr  string
	apiToken    string
	callTimeout time.Duration
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:          "ledgerctl",
	Short:        "Administer and query a walletledger server",
	SilenceUsage: true,
}

func init() {
	// flag defaults come from the environment, .env included
	_ = godotenv.Load()
	cfg := config.Load()
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "localhost:"+cfg.GRPCPort, "gRPC server address.")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", cfg.APIToken, "API token sent as authorization metadata.")
	rootCmd.PersistentFlags().DurationVar(&callTimeout, "timeout", 10*time.Second, "Deadline of each RPC.")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
}

func newLogger(w io.Writer) *logger.Logger {
	return logger.New(logger.Config{Level: logger.ParseLevel(logLevel), Format: "text", Output: w})
}

// dial connects to the server and runs fn with a client bound to the call timeout
func dial(cmd *cobra.Command, fn func(ctx context.Context, c walletledgerv1.LedgerServiceClient) error) error {
	conn, err := grpclib.NewClient(serverAddr,
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
		grpcadapter.WithToken(apiToken),
	)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", serverAddr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()
	return fn(ctx, walletledgerv1.NewLedgerServiceClient(conn))
}

func printJSON(w io.Writer, m proto.Message) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
