package repositories

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// PaymentReader defines read operations over the external payment ledger.
type PaymentReader interface {
	// ListOrphanBankPayments retrieves bank-settled payments that no ticket is linked to,
	// paid inside the window.
	ListOrphanBankPayments(ctx context.Context, window domain.DateWindow) ([]domain.Payment, error)
}
