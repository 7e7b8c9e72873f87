package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
)

// ErrLinkRejected is returned when a confirmation could not be applied. The cause stays
// wrapped, so errors.Is also matches apperrors.ErrNotFound or apperrors.ErrConflict.
var ErrLinkRejected = errors.New("match confirmation rejected")

type reconciliationService struct {
	BaseService
	linker portsrepo.ReconciliationLinker
	now    func() time.Time
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*reconciliationService)

// WithReconciliationClock overrides the clock used for the identification timestamp
func WithReconciliationClock(now func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.now = now
	}
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(linker portsrepo.ReconciliationLinker, options ...ReconciliationServiceOption) portssvc.ReconciliationSvc {
	svc := &reconciliationService{linker: linker, now: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// ConfirmMatch links ticketID and transactionID. Either both records change or neither does.
func (s *reconciliationService) ConfirmMatch(ctx context.Context, ticketID, transactionID, userID string) error {
	ticketID = strings.TrimSpace(ticketID)
	transactionID = strings.TrimSpace(transactionID)
	if ticketID == "" || transactionID == "" {
		return fmt.Errorf("%w: %w", ErrLinkRejected, apperrors.NewValidationError("ticketID and transactionID are required"))
	}

	identifiedAt := s.now().UTC()
	if err := s.linker.LinkTicketToTransaction(ctx, ticketID, transactionID, identifiedAt, userID); err != nil {
		s.LogError(ctx, err, "Failed to confirm match",
			slog.String("ticket_id", ticketID),
			slog.String("transaction_id", transactionID))
		return fmt.Errorf("%w: %w", ErrLinkRejected, err)
	}

	s.LogInfo(ctx, "Match confirmed",
		slog.String("ticket_id", ticketID),
		slog.String("transaction_id", transactionID),
		slog.Time("identified_at", identifiedAt))
	return nil
}
