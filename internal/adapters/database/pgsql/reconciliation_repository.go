package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates the repository that applies confirmed matches.
func newPgxReconciliationRepository(pool *pgxpool.Pool) portsrepo.ReconciliationLinker {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReconciliationLinker = (*PgxReconciliationRepository)(nil)

// LinkTicketToTransaction flags the ticket and links the transaction in one DB transaction.
// Both updates are conditional on the row still being unreconciled, so a concurrent
// confirmation of either side makes this one fail with a conflict.
func (r *PgxReconciliationRepository) LinkTicketToTransaction(ctx context.Context, ticketID, transactionID string, identifiedAt time.Time, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Defer rollback in case of error
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	tag, err := tx.Exec(ctx, `
		UPDATE tickets
		SET reconciled = true, last_updated_at = $2, last_updated_by = $3
		WHERE ticket_id = $1 AND reconciled = false;
	`, ticketID, identifiedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark ticket "+ticketID+" reconciled", err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrTaken(ctx, tx, `SELECT EXISTS (SELECT 1 FROM tickets WHERE ticket_id = $1)`, ticketID, "ticket")
	}

	tag, err = tx.Exec(ctx, `
		UPDATE bank_transactions
		SET ticket_id = $1, identified_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $4 AND ticket_id IS NULL;
	`, ticketID, identifiedAt, userID, transactionID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("ticket " + ticketID + " is already linked to another bank transaction")
		}
		return apperrors.NewAppError(500, "failed to link bank transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrTaken(ctx, tx, `SELECT EXISTS (SELECT 1 FROM bank_transactions WHERE transaction_id = $1)`, transactionID, "bank transaction")
	}

	return r.Commit(ctx, tx)
}

// missingOrTaken explains why a conditional update touched no rows.
func (r *PgxReconciliationRepository) missingOrTaken(ctx context.Context, tx pgx.Tx, existsQuery, id, kind string) error {
	var exists bool
	if err := tx.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check "+kind+" "+id, err)
	}
	if !exists {
		return apperrors.NewNotFoundError(kind + " not found: " + id)
	}
	return apperrors.NewConflictError(kind + " already reconciled: " + id)
}
