package pgsql

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/SscSPs/collections_reconciliation/internal/models"
	"github.com/SscSPs/collections_reconciliation/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a read-only repository over the payments ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentReader {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentReader = (*PgxPaymentRepository)(nil)

// ListOrphanBankPayments retrieves bank-settled payments with no ticket, paid inside the window.
func (r *PgxPaymentRepository) ListOrphanBankPayments(ctx context.Context, window domain.DateWindow) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, amount, method, ticket_id, client_id, paid_at
		FROM payments
		WHERE method = $1 AND ticket_id IS NULL AND paid_at BETWEEN $2 AND $3
		ORDER BY paid_at DESC, payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, mapping.PaymentMethodBank, window.From, window.To)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orphan payments", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.Amount, &m.Method, &m.TicketID, &m.ClientID, &m.PaidAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}
