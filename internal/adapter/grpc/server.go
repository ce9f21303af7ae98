package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/usecase/creditcard"
	"github.com/simaogato/walletledger-backend/internal/usecase/dashboard"
	"github.com/simaogato/walletledger-backend/internal/usecase/invoice"
	"github.com/simaogato/walletledger-backend/internal/usecase/ledger"
	"github.com/simaogato/walletledger-backend/internal/usecase/transfer"
	"github.com/simaogato/walletledger-backend/internal/usecase/wallet"
)

//go:generate protoc -I ../../../api --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative walletledger/v1/ledger.proto

// Server implements the LedgerService gRPC server
type Server struct {
	walletledgerv1.UnimplementedLedgerServiceServer

	WalletService    *wallet.WalletService
	LedgerService    *ledger.LedgerService
	TransferService  *transfer.TransferService
	CardService      *creditcard.CardService
	DebtService      *creditcard.DebtService
	InvoiceService   *invoice.InvoiceService
	DashboardService *dashboard.DashboardService

	// Now stamps requests that carry no date
	Now func() time.Time
}

var _ walletledgerv1.LedgerServiceServer = (*Server)(nil)

// Services groups the usecases the server exposes
type Services struct {
	Wallets   *wallet.WalletService
	Ledger    *ledger.LedgerService
	Transfers *transfer.TransferService
	Cards     *creditcard.CardService
	Debts     *creditcard.DebtService
	Invoices  *invoice.InvoiceService
	Dashboard *dashboard.DashboardService
}

// NewServer creates a new gRPC server instance
func NewServer(svc Services) *Server {
	return &Server{
		WalletService:    svc.Wallets,
		LedgerService:    svc.Ledger,
		TransferService:  svc.Transfers,
		CardService:      svc.Cards,
		DebtService:      svc.Debts,
		InvoiceService:   svc.Invoices,
		DashboardService: svc.Dashboard,
		Now:              time.Now,
	}
}

// AddWallet handles the AddWallet RPC
func (s *Server) AddWallet(ctx context.Context, req *walletledgerv1.AddWalletRequest) (*walletledgerv1.IDResponse, error) {
	balance, err := parseAmount("initial_balance", orZero(req.InitialBalance))
	if err != nil {
		return nil, err
	}

	id, err := s.WalletService.AddWallet(ctx, wallet.AddWalletInput{
		Name:           req.Name,
		InitialBalance: balance,
		Purpose:        domain.WalletPurpose(req.Purpose),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// RenameWallet handles the RenameWallet RPC
func (s *Server) RenameWallet(ctx context.Context, req *walletledgerv1.RenameWalletRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	return empty(s.WalletService.RenameWallet(ctx, id, req.Name))
}

// ArchiveWallet handles the ArchiveWallet RPC
func (s *Server) ArchiveWallet(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.WalletService.ArchiveWallet)
}

// UnarchiveWallet handles the UnarchiveWallet RPC
func (s *Server) UnarchiveWallet(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.WalletService.UnarchiveWallet)
}

// DeleteWallet handles the DeleteWallet RPC
func (s *Server) DeleteWallet(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.WalletService.DeleteWallet)
}

// GetWallet handles the GetWallet RPC
func (s *Server) GetWallet(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.Wallet, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	w, err := s.WalletService.GetWallet(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return walletToMessage(w), nil
}

// ListWallets handles the ListWallets RPC
func (s *Server) ListWallets(ctx context.Context, _ *emptypb.Empty) (*walletledgerv1.ListWalletsResponse, error) {
	wallets, err := s.WalletService.ListWallets(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	out := &walletledgerv1.ListWalletsResponse{Wallets: make([]*walletledgerv1.Wallet, 0, len(wallets))}
	for _, w := range wallets {
		out.Wallets = append(out.Wallets, walletToMessage(w))
	}
	return out, nil
}

// AddEntry handles the AddEntry RPC
func (s *Server) AddEntry(ctx context.Context, req *walletledgerv1.EntryRequest) (*walletledgerv1.IDResponse, error) {
	input, err := s.entryInput(req)
	if err != nil {
		return nil, err
	}
	id, err := s.LedgerService.AddEntry(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// UpdateEntry handles the UpdateEntry RPC
func (s *Server) UpdateEntry(ctx context.Context, req *walletledgerv1.EntryRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	input, err := s.entryInput(req)
	if err != nil {
		return nil, err
	}
	return empty(s.LedgerService.UpdateEntry(ctx, ledger.UpdateEntryInput{
		ID:          id,
		WalletID:    input.WalletID,
		CategoryID:  input.CategoryID,
		Kind:        input.Kind,
		Status:      input.Status,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: input.Description,
	}))
}

// ConfirmEntry handles the ConfirmEntry RPC
func (s *Server) ConfirmEntry(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.LedgerService.ConfirmEntry)
}

// DeleteEntry handles the DeleteEntry RPC
func (s *Server) DeleteEntry(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.LedgerService.DeleteEntry)
}

// GetEntry handles the GetEntry RPC
func (s *Server) GetEntry(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.Entry, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	e, err := s.LedgerService.GetEntry(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return entryToMessage(e), nil
}

func (s *Server) entryInput(req *walletledgerv1.EntryRequest) (ledger.AddEntryInput, error) {
	walletID, err := parseID("wallet_id", req.WalletId)
	if err != nil {
		return ledger.AddEntryInput{}, err
	}
	categoryID, err := parseID("category_id", req.CategoryId)
	if err != nil {
		return ledger.AddEntryInput{}, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return ledger.AddEntryInput{}, err
	}
	date, err := parseTime("date", req.Date, s.Now())
	if err != nil {
		return ledger.AddEntryInput{}, err
	}
	return ledger.AddEntryInput{
		WalletID:    walletID,
		CategoryID:  categoryID,
		Kind:        domain.EntryKind(req.Kind),
		Status:      domain.EntryStatus(req.Status),
		Amount:      amount,
		Date:        date,
		Description: req.Description,
	}, nil
}

// Transfer handles the Transfer RPC
func (s *Server) Transfer(ctx context.Context, req *walletledgerv1.TransferRequest) (*walletledgerv1.IDResponse, error) {
	input, err := s.transferInput(req)
	if err != nil {
		return nil, err
	}
	id, err := s.TransferService.Transfer(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// UpdateTransfer handles the UpdateTransfer RPC
func (s *Server) UpdateTransfer(ctx context.Context, req *walletledgerv1.TransferRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	input, err := s.transferInput(req)
	if err != nil {
		return nil, err
	}
	return empty(s.TransferService.UpdateTransfer(ctx, transfer.UpdateTransferInput{ID: id, TransferInput: input}))
}

// DeleteTransfer handles the DeleteTransfer RPC
func (s *Server) DeleteTransfer(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.TransferService.DeleteTransfer)
}

// GetTransfer handles the GetTransfer RPC
func (s *Server) GetTransfer(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.Transfer, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	t, err := s.TransferService.GetTransfer(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return transferToMessage(t), nil
}

func (s *Server) transferInput(req *walletledgerv1.TransferRequest) (transfer.TransferInput, error) {
	sender, err := parseID("sender_wallet_id", req.SenderWalletId)
	if err != nil {
		return transfer.TransferInput{}, err
	}
	receiver, err := parseID("receiver_wallet_id", req.ReceiverWalletId)
	if err != nil {
		return transfer.TransferInput{}, err
	}
	categoryID, err := parseOptionalID("category_id", req.CategoryId)
	if err != nil {
		return transfer.TransferInput{}, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return transfer.TransferInput{}, err
	}
	date, err := parseTime("date", req.Date, s.Now())
	if err != nil {
		return transfer.TransferInput{}, err
	}
	return transfer.TransferInput{
		SenderWalletID:   sender,
		ReceiverWalletID: receiver,
		CategoryID:       categoryID,
		Amount:           amount,
		Date:             date,
		Description:      req.Description,
	}, nil
}

// AddCreditCard handles the AddCreditCard RPC
func (s *Server) AddCreditCard(ctx context.Context, req *walletledgerv1.CreditCardRequest) (*walletledgerv1.IDResponse, error) {
	input, err := cardInput(req)
	if err != nil {
		return nil, err
	}
	id, err := s.CardService.AddCreditCard(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// UpdateCreditCard handles the UpdateCreditCard RPC
func (s *Server) UpdateCreditCard(ctx context.Context, req *walletledgerv1.CreditCardRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	input, err := cardInput(req)
	if err != nil {
		return nil, err
	}
	return empty(s.CardService.UpdateCreditCard(ctx, id, input))
}

// ArchiveCreditCard handles the ArchiveCreditCard RPC
func (s *Server) ArchiveCreditCard(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.CardService.ArchiveCreditCard)
}

// UnarchiveCreditCard handles the UnarchiveCreditCard RPC
func (s *Server) UnarchiveCreditCard(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.CardService.UnarchiveCreditCard)
}

// DeleteCreditCard handles the DeleteCreditCard RPC
func (s *Server) DeleteCreditCard(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.CardService.DeleteCreditCard)
}

// GetCreditCard handles the GetCreditCard RPC
func (s *Server) GetCreditCard(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.CreditCard, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	c, err := s.CardService.GetCreditCard(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return cardToMessage(c), nil
}

// ListCreditCards handles the ListCreditCards RPC
func (s *Server) ListCreditCards(ctx context.Context, _ *emptypb.Empty) (*walletledgerv1.ListCreditCardsResponse, error) {
	cards, err := s.CardService.ListCreditCards(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	out := &walletledgerv1.ListCreditCardsResponse{CreditCards: make([]*walletledgerv1.CreditCard, 0, len(cards))}
	for _, c := range cards {
		out.CreditCards = append(out.CreditCards, cardToMessage(c))
	}
	return out, nil
}

// ListOperators handles the ListOperators RPC
func (s *Server) ListOperators(ctx context.Context, _ *emptypb.Empty) (*walletledgerv1.ListOperatorsResponse, error) {
	operators, err := s.CardService.ListOperators(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	out := &walletledgerv1.ListOperatorsResponse{Operators: make([]*walletledgerv1.Operator, 0, len(operators))}
	for _, op := range operators {
		out.Operators = append(out.Operators, &walletledgerv1.Operator{Id: op.ID.String(), Name: op.Name})
	}
	return out, nil
}

// AvailableCredit handles the AvailableCredit RPC
func (s *Server) AvailableCredit(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.AmountResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	available, err := s.CardService.AvailableCredit(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.AmountResponse{Amount: money(available)}, nil
}

func cardInput(req *walletledgerv1.CreditCardRequest) (creditcard.CreditCardInput, error) {
	maxDebt, err := parseAmount("max_debt", req.MaxDebt)
	if err != nil {
		return creditcard.CreditCardInput{}, err
	}
	operatorID, err := parseID("operator_id", req.OperatorId)
	if err != nil {
		return creditcard.CreditCardInput{}, err
	}
	walletID, err := parseOptionalID("default_billing_wallet_id", req.DefaultBillingWalletId)
	if err != nil {
		return creditcard.CreditCardInput{}, err
	}
	return creditcard.CreditCardInput{
		Name:                   req.Name,
		BillingDueDay:          int(req.BillingDueDay),
		ClosingDay:             int(req.ClosingDay),
		MaxDebt:                maxDebt,
		LastFourDigits:         req.LastFourDigits,
		OperatorID:             operatorID,
		DefaultBillingWalletID: walletID,
	}, nil
}

// AddCredit handles the AddCredit RPC
func (s *Server) AddCredit(ctx context.Context, req *walletledgerv1.CreditRequest) (*walletledgerv1.IDResponse, error) {
	input, err := s.creditInput(req)
	if err != nil {
		return nil, err
	}
	id, err := s.CardService.AddCredit(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// UpdateCredit handles the UpdateCredit RPC
func (s *Server) UpdateCredit(ctx context.Context, req *walletledgerv1.CreditRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	input, err := s.creditInput(req)
	if err != nil {
		return nil, err
	}
	return empty(s.CardService.UpdateCredit(ctx, id, input))
}

// DeleteCredit handles the DeleteCredit RPC
func (s *Server) DeleteCredit(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.CardService.DeleteCredit)
}

// ListCredits handles the ListCredits RPC. The request id is the card's.
func (s *Server) ListCredits(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.ListCreditsResponse, error) {
	cardID, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	credits, err := s.CardService.ListCredits(ctx, cardID)
	if err != nil {
		return nil, mapError(err)
	}
	out := &walletledgerv1.ListCreditsResponse{Credits: make([]*walletledgerv1.Credit, 0, len(credits))}
	for _, c := range credits {
		out.Credits = append(out.Credits, creditToMessage(c))
	}
	return out, nil
}

func (s *Server) creditInput(req *walletledgerv1.CreditRequest) (creditcard.CreditInput, error) {
	cardID, err := parseID("credit_card_id", req.CreditCardId)
	if err != nil {
		return creditcard.CreditInput{}, err
	}
	typ, err := domain.ParseCreditType(req.Type)
	if err != nil {
		return creditcard.CreditInput{}, mapError(err)
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return creditcard.CreditInput{}, err
	}
	date, err := parseTime("date", req.Date, s.Now())
	if err != nil {
		return creditcard.CreditInput{}, err
	}
	return creditcard.CreditInput{
		CreditCardID: cardID,
		Type:         typ,
		Amount:       amount,
		Date:         date,
		Description:  req.Description,
	}, nil
}

// RegisterDebt handles the RegisterDebt RPC
func (s *Server) RegisterDebt(ctx context.Context, req *walletledgerv1.RegisterDebtRequest) (*walletledgerv1.IDResponse, error) {
	cardID, err := parseID("credit_card_id", req.CreditCardId)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	registerDate, err := parseTime("register_date", req.RegisterDate, s.Now())
	if err != nil {
		return nil, err
	}
	month, err := parseMonth("invoice_month", req.InvoiceMonth)
	if err != nil {
		return nil, err
	}
	total, err := parseAmount("total_amount", req.TotalAmount)
	if err != nil {
		return nil, err
	}

	id, err := s.DebtService.RegisterDebt(ctx, creditcard.RegisterDebtInput{
		CreditCardID: cardID,
		CategoryID:   categoryID,
		RegisterDate: registerDate,
		InvoiceMonth: month,
		TotalAmount:  total,
		Installments: int(req.Installments),
		Description:  req.Description,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.IDResponse{Id: id.String()}, nil
}

// UpdateDebt handles the UpdateDebt RPC
func (s *Server) UpdateDebt(ctx context.Context, req *walletledgerv1.UpdateDebtRequest) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID("category_id", req.CategoryId)
	if err != nil {
		return nil, err
	}
	month, err := parseMonth("invoice_month", req.InvoiceMonth)
	if err != nil {
		return nil, err
	}
	total, err := parseAmount("total_amount", req.TotalAmount)
	if err != nil {
		return nil, err
	}

	return empty(s.DebtService.UpdateDebt(ctx, creditcard.UpdateDebtInput{
		ID:           id,
		CategoryID:   categoryID,
		InvoiceMonth: month,
		TotalAmount:  total,
		Installments: int(req.Installments),
		Description:  req.Description,
	}))
}

// DeleteDebt handles the DeleteDebt RPC
func (s *Server) DeleteDebt(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.DebtService.DeleteDebt)
}

// GetDebt handles the GetDebt RPC
func (s *Server) GetDebt(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.Debt, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	debt, payments, err := s.DebtService.GetDebt(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return debtToMessage(debt, payments), nil
}

// NextInvoiceDate handles the NextInvoiceDate RPC
func (s *Server) NextInvoiceDate(ctx context.Context, req *walletledgerv1.IDRequest) (*walletledgerv1.NextInvoiceDateResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	next, err := s.InvoiceService.NextInvoiceDate(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.NextInvoiceDateResponse{Date: timestamppb.New(next)}, nil
}

// InvoiceStatus handles the InvoiceStatus RPC
func (s *Server) InvoiceStatus(ctx context.Context, req *walletledgerv1.InvoiceRequest) (*walletledgerv1.InvoiceStatusResponse, error) {
	cardID, month, err := invoiceKey(req)
	if err != nil {
		return nil, err
	}
	st, err := s.InvoiceService.InvoiceStatus(ctx, cardID, month)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.InvoiceStatusResponse{Status: string(st)}, nil
}

// InvoiceAmount handles the InvoiceAmount RPC
func (s *Server) InvoiceAmount(ctx context.Context, req *walletledgerv1.InvoiceRequest) (*walletledgerv1.AmountResponse, error) {
	cardID, month, err := invoiceKey(req)
	if err != nil {
		return nil, err
	}
	amount, err := s.InvoiceService.InvoiceAmount(ctx, cardID, month)
	if err != nil {
		return nil, mapError(err)
	}
	return &walletledgerv1.AmountResponse{Amount: money(amount)}, nil
}

// PayInvoice handles the PayInvoice RPC
func (s *Server) PayInvoice(ctx context.Context, req *walletledgerv1.PayInvoiceRequest) (*walletledgerv1.PayInvoiceResponse, error) {
	cardID, month, err := invoiceKey(&walletledgerv1.InvoiceRequest{CreditCardId: req.CreditCardId, Month: req.Month})
	if err != nil {
		return nil, err
	}
	walletID, err := parseID("wallet_id", req.WalletId)
	if err != nil {
		return nil, err
	}
	rebate := decimal.Zero
	if req.Rebate != "" {
		if rebate, err = parseAmount("rebate", req.Rebate); err != nil {
			return nil, err
		}
	}

	result, err := s.InvoiceService.PayInvoice(ctx, invoice.PayInvoiceInput{
		CreditCardID: cardID,
		WalletID:     walletID,
		Month:        month,
		Rebate:       rebate,
	})
	if err != nil {
		return nil, mapError(err)
	}

	out := &walletledgerv1.PayInvoiceResponse{
		Total:      money(result.Total),
		Rebate:     money(result.Rebate),
		PaymentIds: make([]string, 0, len(result.PaymentIDs)),
	}
	for _, id := range result.PaymentIDs {
		out.PaymentIds = append(out.PaymentIds, id.String())
	}
	return out, nil
}

// DeletePayment handles the DeletePayment RPC
func (s *Server) DeletePayment(ctx context.Context, req *walletledgerv1.IDRequest) (*emptypb.Empty, error) {
	return withID(ctx, req, s.InvoiceService.DeletePayment)
}

func invoiceKey(req *walletledgerv1.InvoiceRequest) (uuid.UUID, domain.YearMonth, error) {
	cardID, err := parseID("credit_card_id", req.CreditCardId)
	if err != nil {
		return uuid.Nil, domain.YearMonth{}, err
	}
	month, err := parseMonth("month", req.Month)
	if err != nil {
		return uuid.Nil, domain.YearMonth{}, err
	}
	return cardID, month, nil
}

// GetOverview handles the GetOverview RPC
func (s *Server) GetOverview(ctx context.Context, _ *emptypb.Empty) (*walletledgerv1.OverviewResponse, error) {
	overview, err := s.DashboardService.GetOverview(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	out := &walletledgerv1.OverviewResponse{
		TotalBalance:        money(overview.TotalBalance),
		PendingInstallments: money(overview.PendingInstallments),
		Net:                 money(overview.Net),
		Invoices:            make([]*walletledgerv1.CardInvoice, 0, len(overview.Invoices)),
	}
	for _, inv := range overview.Invoices {
		out.Invoices = append(out.Invoices, &walletledgerv1.CardInvoice{
			CreditCardId: inv.CardID.String(),
			Name:         inv.Name,
			Month:        inv.Month.String(),
			Amount:       money(inv.Amount),
		})
	}
	return out, nil
}

// withID parses the request id and runs a mutation that returns nothing
func withID(ctx context.Context, req *walletledgerv1.IDRequest, fn func(context.Context, uuid.UUID) error) (*emptypb.Empty, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}
	return empty(fn(ctx, id))
}

func empty(err error) (*emptypb.Empty, error) {
	if err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
