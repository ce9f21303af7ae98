package domain

import (
	"context"
	"time"
)

// Event topics
const (
	TopicTransferCompleted = "ledger.transfer.completed"
	TopicDebtRegistered    = "ledger.debt.registered"
	TopicInvoicePaid       = "ledger.invoice.paid"
)

// EventPublisher delivers domain events after their unit of work committed
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// TransferCompleted is published after a transfer is recorded
type TransferCompleted struct {
	TransferID       string    `json:"transfer_id"`
	SenderWalletID   string    `json:"sender_wallet_id"`
	ReceiverWalletID string    `json:"receiver_wallet_id"`
	Amount           string    `json:"amount"`
	Date             time.Time `json:"date"`
}

// DebtRegistered is published after a debt and its schedule are created
type DebtRegistered struct {
	DebtID       string `json:"debt_id"`
	CreditCardID string `json:"credit_card_id"`
	TotalAmount  string `json:"total_amount"`
	Installments int    `json:"installments"`
	InvoiceMonth string `json:"invoice_month"`
}

// InvoicePaid is published after a batch of installments is settled
type InvoicePaid struct {
	CreditCardID string   `json:"credit_card_id"`
	WalletID     string   `json:"wallet_id"`
	Month        string   `json:"month"`
	Total        string   `json:"total"`
	Rebate       string   `json:"rebate"`
	PaymentIDs   []string `json:"payment_ids"`
}
