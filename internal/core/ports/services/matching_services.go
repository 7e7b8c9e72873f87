package services

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// MatchingSvc defines match suggestion operations
type MatchingSvc interface {
	// SuggestMatches runs a batch pass over the bounded unreconciled pools.
	SuggestMatches(ctx context.Context) ([]domain.MatchSuggestion, error)

	// SuggestMatchesForTicket lists every amount-matching transaction for one ticket, best first.
	SuggestMatchesForTicket(ctx context.Context, ticketID string) ([]domain.MatchSuggestion, error)

	// AutoReconcile runs a batch pass and confirms suggestions at or above the configured priority.
	AutoReconcile(ctx context.Context, userID string) (domain.AutoAcceptResult, error)
}
