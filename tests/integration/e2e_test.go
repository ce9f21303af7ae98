//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	grpcadapter "github.com/simaogato/walletledger-backend/internal/adapter/grpc"
	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
	"github.com/simaogato/walletledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/walletledger-backend/internal/config"
	"github.com/simaogato/walletledger-backend/internal/usecase/seeder"
)

var (
	db     *postgres.DB
	client walletledgerv1.LedgerServiceClient
)

// TestMain connects to the database and to a server started with DATA_BACKEND=postgres
func TestMain(m *testing.M) {
	cfg := config.Load()

	var err error
	db, err = postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	conn, err := grpc.NewClient(getGRPCAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpcadapter.WithToken(cfg.APIToken),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	client = walletledgerv1.NewLedgerServiceClient(conn)

	code := m.Run()

	conn.Close()
	db.Close()
	os.Exit(code)
}

// getGRPCAddress returns the gRPC server address from environment or defaults
func getGRPCAddress() string {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}
	return addr
}

func unique(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}

func walletBalance(t *testing.T, ctx context.Context, id string) decimal.Decimal {
	t.Helper()
	var raw string
	err := db.QueryRowContext(ctx, `SELECT balance FROM wallets WHERE id = $1`, id).Scan(&raw)
	require.NoError(t, err, "Should be able to query wallet balance")
	balance, err := decimal.NewFromString(raw)
	require.NoError(t, err)
	return balance
}

// TestEndToEndFlow tests the complete flow: Wallet -> Card -> Debt -> Invoice payment
func TestEndToEndFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Step A: wallet and card
	walletResp, err := client.AddWallet(ctx, &walletledgerv1.AddWalletRequest{
		Name:           unique("Checking"),
		InitialBalance: "1000.00",
	})
	require.NoError(t, err)

	cardResp, err := client.AddCreditCard(ctx, &walletledgerv1.CreditCardRequest{
		Name:           unique("Gold"),
		BillingDueDay:  10,
		ClosingDay:     3,
		MaxDebt:        "1000.00",
		LastFourDigits: "4242",
		OperatorId:     seeder.OperatorVisa.String(),
	})
	require.NoError(t, err)

	// Step B: register 100.00 over 3 installments starting January 2025
	debtResp, err := client.RegisterDebt(ctx, &walletledgerv1.RegisterDebtRequest{
		CreditCardId: cardResp.Id,
		CategoryId:   uuid.NewString(),
		RegisterDate: timestamppb.New(time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)),
		InvoiceMonth: "2025-01",
		TotalAmount:  "100.00",
		Installments: 3,
	})
	require.NoError(t, err)

	rows, err := db.QueryContext(ctx,
		`SELECT installment, amount FROM credit_card_payments WHERE debt_id = $1 ORDER BY installment`, debtResp.Id)
	require.NoError(t, err)
	var amounts []string
	for rows.Next() {
		var n int
		var amount string
		require.NoError(t, rows.Scan(&n, &amount))
		amounts = append(amounts, amount)
	}
	require.NoError(t, rows.Err())
	rows.Close()
	assert.Equal(t, []string{"33.34", "33.33", "33.33"}, amounts, "Remainder should land on installment #1")

	available, err := client.AvailableCredit(ctx, &walletledgerv1.IDRequest{Id: cardResp.Id})
	require.NoError(t, err)
	assert.Equal(t, "900.00", available.Amount)

	// Step C: pay the January invoice
	paid, err := client.PayInvoice(ctx, &walletledgerv1.PayInvoiceRequest{
		CreditCardId: cardResp.Id,
		WalletId:     walletResp.Id,
		Month:        "2025-01",
	})
	require.NoError(t, err, "PayInvoice should succeed")
	assert.Equal(t, "33.34", paid.Total)
	require.Len(t, paid.PaymentIds, 1)

	assert.True(t, walletBalance(t, ctx, walletResp.Id).Equal(decimal.RequireFromString("966.66")),
		"Wallet should be debited by the invoice total")

	var settledBy string
	err = db.QueryRowContext(ctx, `SELECT wallet_id FROM credit_card_payments WHERE id = $1`, paid.PaymentIds[0]).Scan(&settledBy)
	require.NoError(t, err)
	assert.Equal(t, walletResp.Id, settledBy)

	// Step D: paying the same month again changes nothing
	again, err := client.PayInvoice(ctx, &walletledgerv1.PayInvoiceRequest{
		CreditCardId: cardResp.Id,
		WalletId:     walletResp.Id,
		Month:        "2025-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.00", again.Total)
	assert.Empty(t, again.PaymentIds)

	// Step E: rebalance to 2 installments keeps the paid one and ripples the wallet
	_, err = client.UpdateDebt(ctx, &walletledgerv1.UpdateDebtRequest{
		Id:           debtResp.Id,
		CategoryId:   uuid.NewString(),
		InvoiceMonth: "2025-01",
		TotalAmount:  "100.00",
		Installments: 2,
	})
	require.NoError(t, err)

	debt, err := client.GetDebt(ctx, &walletledgerv1.IDRequest{Id: debtResp.Id})
	require.NoError(t, err)
	require.Len(t, debt.Payments, 2)
	assert.Equal(t, "50.00", debt.Payments[0].Amount)
	assert.Equal(t, "50.00", debt.Payments[1].Amount)
	// paid #1 went 33.34 -> 50.00, so its wallet moves by +16.66
	assert.True(t, walletBalance(t, ctx, walletResp.Id).Equal(decimal.RequireFromString("983.32")))

	// Step F: a cashback credit pays part of February
	_, err = client.AddCredit(ctx, &walletledgerv1.CreditRequest{
		CreditCardId: cardResp.Id,
		Type:         "CASHBACK",
		Amount:       "12.50",
	})
	require.NoError(t, err)

	feb, err := client.PayInvoice(ctx, &walletledgerv1.PayInvoiceRequest{
		CreditCardId: cardResp.Id,
		WalletId:     walletResp.Id,
		Month:        "2025-02",
		Rebate:       "12.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "50.00", feb.Total)
	assert.Equal(t, "12.50", feb.Rebate)
	assert.True(t, walletBalance(t, ctx, walletResp.Id).Equal(decimal.RequireFromString("945.82")))

	var rebateUsed, availableRebate string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT rebate_used FROM credit_card_payments WHERE id = $1`, feb.PaymentIds[0]).Scan(&rebateUsed))
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT available_rebate FROM credit_cards WHERE id = $1`, cardResp.Id).Scan(&availableRebate))
	assert.Equal(t, "12.50", rebateUsed)
	assert.Equal(t, "0.00", availableRebate)
}

func TestTransferInsufficientFunds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := client.AddWallet(ctx, &walletledgerv1.AddWalletRequest{Name: unique("Sender"), InitialBalance: "10"})
	require.NoError(t, err)
	b, err := client.AddWallet(ctx, &walletledgerv1.AddWalletRequest{Name: unique("Receiver")})
	require.NoError(t, err)

	_, err = client.Transfer(ctx, &walletledgerv1.TransferRequest{
		SenderWalletId:   a.Id,
		ReceiverWalletId: b.Id,
		Amount:           "10.01",
	})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	assert.True(t, walletBalance(t, ctx, a.Id).Equal(decimal.RequireFromString("10.00")), "Failed transfer must not move money")
}
