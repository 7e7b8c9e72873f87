package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/SscSPs/collections_reconciliation/internal/models"
	"github.com/SscSPs/collections_reconciliation/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ticketSelect reads tickets with the client columns the matcher needs.
const ticketSelect = `
	SELECT t.ticket_id, t.amount, t.folio, t.reference, t.client_id, t.occurred_at,
	       t.reconciled, t.tracking_key, t.created_at,
	       c.account_code, c.full_name, c.client_id IS NOT NULL
	FROM tickets t
	LEFT JOIN clients c ON c.client_id = t.client_id
`

type PgxTicketRepository struct {
	BaseRepository
}

// newPgxTicketRepository creates a new repository for ticket data.
func newPgxTicketRepository(pool *pgxpool.Pool) portsrepo.TicketRepositoryFacade {
	return &PgxTicketRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TicketRepositoryFacade = (*PgxTicketRepository)(nil)

// FindTicketByID retrieves a ticket by its ID.
func (r *PgxTicketRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	m, err := scanTicket(r.Pool.QueryRow(ctx, ticketSelect+` WHERE t.ticket_id = $1;`, ticketID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("ticket not found: " + ticketID)
		}
		return nil, apperrors.NewAppError(500, "failed to find ticket "+ticketID, err)
	}
	ticket := mapping.ToDomainTicket(m)
	return &ticket, nil
}

// ListUnreconciledTickets retrieves the most recent unreconciled tickets.
func (r *PgxTicketRepository) ListUnreconciledTickets(ctx context.Context, limit int) ([]domain.Ticket, error) {
	query := ticketSelect + `
		WHERE t.reconciled = false
		ORDER BY t.occurred_at DESC, t.created_at DESC, t.ticket_id
		LIMIT $1;
	`
	return r.queryTickets(ctx, query, limitArg(limit))
}

// ListUnreconciledTicketsBetween retrieves unreconciled tickets that occurred inside the window.
func (r *PgxTicketRepository) ListUnreconciledTicketsBetween(ctx context.Context, window domain.DateWindow) ([]domain.Ticket, error) {
	query := ticketSelect + `
		WHERE t.reconciled = false AND t.occurred_at BETWEEN $1 AND $2
		ORDER BY t.occurred_at DESC, t.created_at DESC, t.ticket_id;
	`
	return r.queryTickets(ctx, query, window.From, window.To)
}

func (r *PgxTicketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tickets", err)
	}
	defer rows.Close()

	ms := make([]models.Ticket, 0)
	for rows.Next() {
		m, err := scanTicket(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ticket row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ticket rows", err)
	}
	return mapping.ToDomainTicketSlice(ms), nil
}

func scanTicket(row pgx.Row) (models.Ticket, error) {
	var m models.Ticket
	err := row.Scan(
		&m.TicketID,
		&m.Amount,
		&m.Folio,
		&m.Reference,
		&m.ClientID,
		&m.OccurredAt,
		&m.Reconciled,
		&m.TrackingKey,
		&m.CreatedAt,
		&m.ClientAccountCode,
		&m.ClientFullName,
		&m.ClientFound,
	)
	return m, err
}
