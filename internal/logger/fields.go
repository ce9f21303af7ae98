package logger

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldWalletID    = "wallet_id"
	FieldEntryID     = "entry_id"
	FieldTransferID  = "transfer_id"
	FieldCardID      = "credit_card_id"
	FieldDebtID      = "debt_id"
	FieldPaymentID   = "payment_id"
	FieldAmount      = "amount"
	FieldDelta       = "delta"
	FieldMonth       = "month"
	FieldTopic       = "topic"
	FieldMethod      = "method"
	FieldDuration    = "duration_ms"
	FieldGRPCCode    = "grpc_code"
	FieldInstallment = "installment"
	FieldCreditID    = "credit_id"
	FieldRebate      = "rebate"
)

// Component names
const (
	ComponentApp       = "app"
	ComponentGRPC      = "grpc"
	ComponentLedger    = "ledger"
	ComponentTransfer  = "transfer"
	ComponentDebt      = "debt"
	ComponentInvoice   = "invoice"
	ComponentCard      = "credit_card"
	ComponentWallet    = "wallet"
	ComponentStorage   = "storage"
	ComponentEvents    = "events"
	ComponentSeeder    = "seeder"
	ComponentDashboard = "dashboard"
)
