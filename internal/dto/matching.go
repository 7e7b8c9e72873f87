package dto

import (
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MatchSuggestionResponse is one proposed ticket/transaction pairing.
type MatchSuggestionResponse struct {
	TicketID           string          `json:"ticketID"`
	TransactionID      string          `json:"transactionID"`
	Amount             decimal.Decimal `json:"amount"`
	Priority           int             `json:"priority"`
	Reason             string          `json:"reason"`
	Folio              *string         `json:"folio,omitempty"`
	ClientName         string          `json:"clientName,omitempty"`
	TicketOccurredAt   time.Time       `json:"ticketOccurredAt"`
	OriginBank         string          `json:"originBank"`
	OperationDate      string          `json:"operationDate"`
	TransactionConcept string          `json:"transactionConcept"`
}

// ListMatchSuggestionsResponse wraps a list of suggestions.
type ListMatchSuggestionsResponse struct {
	Suggestions []MatchSuggestionResponse `json:"suggestions"`
	Count       int                       `json:"count"`
}

// AutoReconcileResponse reports an automatic batch accept run.
type AutoReconcileResponse struct {
	Suggested int `json:"suggested"`
	Confirmed int `json:"confirmed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// ToMatchSuggestionResponse converts a domain.MatchSuggestion to MatchSuggestionResponse
func ToMatchSuggestionResponse(s domain.MatchSuggestion) MatchSuggestionResponse {
	return MatchSuggestionResponse{
		TicketID:           s.Ticket.TicketID,
		TransactionID:      s.Transaction.TransactionID,
		Amount:             s.Ticket.Amount,
		Priority:           int(s.Priority),
		Reason:             s.Reason,
		Folio:              s.Ticket.Folio,
		ClientName:         s.Ticket.ClientName(),
		TicketOccurredAt:   s.Ticket.OccurredAt,
		OriginBank:         s.Transaction.OriginBank,
		OperationDate:      s.Transaction.OperationDate.Format(time.DateOnly),
		TransactionConcept: s.Transaction.Concept,
	}
}

// ToListMatchSuggestionsResponse converts a slice of suggestions.
func ToListMatchSuggestionsResponse(suggestions []domain.MatchSuggestion) ListMatchSuggestionsResponse {
	list := make([]MatchSuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		list[i] = ToMatchSuggestionResponse(s)
	}
	return ListMatchSuggestionsResponse{Suggestions: list, Count: len(list)}
}

// ToAutoReconcileResponse converts an auto-accept result.
func ToAutoReconcileResponse(r domain.AutoAcceptResult) AutoReconcileResponse {
	return AutoReconcileResponse{
		Suggested: r.Suggested,
		Confirmed: r.Confirmed,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}
