package repositories

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// TicketReader defines read operations for ticket data.
// Tickets are returned with their client reference attached when the client exists.
type TicketReader interface {
	// FindTicketByID retrieves a specific ticket by its ID.
	FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error)

	// ListUnreconciledTickets retrieves the most recent unreconciled tickets, newest first.
	// A limit <= 0 means no limit.
	ListUnreconciledTickets(ctx context.Context, limit int) ([]domain.Ticket, error)

	// ListUnreconciledTicketsBetween retrieves unreconciled tickets that occurred inside the window.
	ListUnreconciledTicketsBetween(ctx context.Context, window domain.DateWindow) ([]domain.Ticket, error)
}

// TicketRepositoryFacade combines all ticket-related repository interfaces.
// Tickets are created by the collections workflow; this service only reads them
// and flips the reconciled flag through ReconciliationLinker.
type TicketRepositoryFacade interface {
	TicketReader
}
