package services

import "context"

// ReconciliationSvc applies confirmed matches
type ReconciliationSvc interface {
	// ConfirmMatch links the ticket to the transaction atomically.
	ConfirmMatch(ctx context.Context, ticketID, transactionID, userID string) error
}
