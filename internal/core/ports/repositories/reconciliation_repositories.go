package repositories

import (
	"context"
	"time"
)

// ReconciliationLinker applies a confirmed match.
type ReconciliationLinker interface {
	// LinkTicketToTransaction marks the ticket reconciled and stores the ticket link and
	// identification time on the transaction in one atomic unit. Either both records change or
	// neither does. It fails with apperrors.ErrNotFound when either id is unknown and with
	// apperrors.ErrConflict when either side is already reconciled.
	LinkTicketToTransaction(ctx context.Context, ticketID, transactionID string, identifiedAt time.Time, userID string) error
}
