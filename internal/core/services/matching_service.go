package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/matching"
)

const (
	defaultMatchPoolLimit        = 100
	defaultAutoAcceptMaxPriority = domain.PriorityFolio
)

type matchingService struct {
	BaseService
	ticketRepo     portsrepo.TicketReader
	txRepo         portsrepo.BankTransactionReader
	reconciliation portssvc.ReconciliationSvc

	poolLimit     int
	autoAcceptMax domain.MatchPriority

	// batchMu serializes batch passes so two runs never hand the same
	// transaction to different tickets.
	batchMu sync.Mutex
}

// MatchingServiceOption is a functional option for configuring the matching service
type MatchingServiceOption func(*matchingService)

// WithMatchPoolLimit bounds each side of a batch pass to the most recent records. 0 lifts the bound.
func WithMatchPoolLimit(limit int) MatchingServiceOption {
	return func(s *matchingService) {
		if limit >= 0 {
			s.poolLimit = limit
		}
	}
}

// WithAutoAcceptMaxPriority sets the worst priority AutoReconcile still confirms.
func WithAutoAcceptMaxPriority(p domain.MatchPriority) MatchingServiceOption {
	return func(s *matchingService) {
		if p >= domain.PriorityAccountCode && p <= domain.PriorityAmountOnly {
			s.autoAcceptMax = p
		}
	}
}

// NewMatchingService creates a new matching service. reconciliation is used by AutoReconcile.
func NewMatchingService(ticketRepo portsrepo.TicketReader, txRepo portsrepo.BankTransactionReader, reconciliation portssvc.ReconciliationSvc, options ...MatchingServiceOption) portssvc.MatchingSvc {
	svc := &matchingService{
		ticketRepo:     ticketRepo,
		txRepo:         txRepo,
		reconciliation: reconciliation,
		poolLimit:      defaultMatchPoolLimit,
		autoAcceptMax:  defaultAutoAcceptMaxPriority,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// SuggestMatches runs one greedy batch pass over the bounded pools.
func (s *matchingService) SuggestMatches(ctx context.Context) ([]domain.MatchSuggestion, error) {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	return s.suggestBatch(ctx)
}

func (s *matchingService) suggestBatch(ctx context.Context) ([]domain.MatchSuggestion, error) {
	tickets, err := s.ticketRepo.ListUnreconciledTickets(ctx, s.poolLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to load unreconciled tickets", slog.Int("limit", s.poolLimit))
		return nil, fmt.Errorf("failed to load ticket pool: %w", err)
	}
	txs, err := s.txRepo.ListUnreconciledBankTransactions(ctx, s.poolLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to load unreconciled bank transactions", slog.Int("limit", s.poolLimit))
		return nil, fmt.Errorf("failed to load transaction pool: %w", err)
	}

	suggestions := matching.SuggestBatch(tickets, txs)
	s.LogInfo(ctx, "Batch match pass completed",
		slog.Int("tickets", len(tickets)),
		slog.Int("transactions", len(txs)),
		slog.Int("suggestions", len(suggestions)))
	return suggestions, nil
}

// SuggestMatchesForTicket scores one ticket against every unlinked transaction.
// A ticket that is already reconciled has nothing left to suggest.
func (s *matchingService) SuggestMatchesForTicket(ctx context.Context, ticketID string) ([]domain.MatchSuggestion, error) {
	ticket, err := s.ticketRepo.FindTicketByID(ctx, ticketID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find ticket", slog.String("ticket_id", ticketID))
		}
		return nil, err
	}
	if ticket.Reconciled {
		return []domain.MatchSuggestion{}, nil
	}

	txs, err := s.txRepo.ListUnreconciledBankTransactions(ctx, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to load unreconciled bank transactions")
		return nil, fmt.Errorf("failed to load transaction pool: %w", err)
	}

	suggestions := matching.SuggestForTicket(*ticket, txs)
	s.LogDebug(ctx, "Ticket match probe completed", slog.String("ticket_id", ticketID), slog.Int("candidates", len(suggestions)))
	return suggestions, nil
}

// AutoReconcile runs a batch pass and confirms each suggestion at or better than the
// auto-accept priority. Rejected confirmations are counted and the run continues.
func (s *matchingService) AutoReconcile(ctx context.Context, userID string) (domain.AutoAcceptResult, error) {
	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	suggestions, err := s.suggestBatch(ctx)
	if err != nil {
		return domain.AutoAcceptResult{}, err
	}

	result := domain.AutoAcceptResult{Suggested: len(suggestions)}
	for _, sug := range suggestions {
		if s.autoAcceptMax.BetterThan(sug.Priority) {
			result.Skipped++
			continue
		}
		if err := s.reconciliation.ConfirmMatch(ctx, sug.Ticket.TicketID, sug.Transaction.TransactionID, userID); err != nil {
			result.Failed++
			continue
		}
		result.Confirmed++
	}

	s.LogInfo(ctx, "Auto reconciliation completed",
		slog.Int("suggested", result.Suggested),
		slog.Int("confirmed", result.Confirmed),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))
	return result, nil
}
