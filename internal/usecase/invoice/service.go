package invoice

import (
	"time"

	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
)

// InvoiceService computes invoice dates and settles monthly invoices
type InvoiceService struct {
	UoW       domain.UnitOfWork
	Publisher domain.EventPublisher
	Log       *logger.Logger
	Now       func() time.Time
}

// NewInvoiceService creates a new InvoiceService instance using the wall clock
func NewInvoiceService(uow domain.UnitOfWork, publisher domain.EventPublisher, log *logger.Logger) *InvoiceService {
	return &InvoiceService{
		UoW:       uow,
		Publisher: publisher,
		Log:       log.WithComponent(logger.ComponentInvoice),
		Now:       time.Now,
	}
}
