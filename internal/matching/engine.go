// Package matching proposes ticket to bank transaction pairings.
//
// Candidates must carry a credit exactly equal to the ticket amount. Among those, the text of
// each transaction is searched for the client account code, then the ticket folio, then the
// first characters of the client name; the first hit fixes the candidate's priority and an
// amount-only coincidence ranks last. A batch pass is greedy: tickets are visited in the given
// order, the best candidate wins with ties going to pool order, and a transaction given to one
// ticket is withdrawn before the next ticket is scored.
package matching

import (
	"sort"
	"strings"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// NamePrefixLength is how many leading characters of the client name are searched for.
const NamePrefixLength = 15

// Score ranks how well tx supports ticket, assuming the amounts already match.
func Score(ticket domain.Ticket, tx domain.BankTransaction) domain.MatchPriority {
	text := strings.ToUpper(tx.SearchText())

	if code := normalize(ticket.AccountCode()); code != "" && strings.Contains(text, code) {
		return domain.PriorityAccountCode
	}
	if folio := normalize(ticket.FolioValue()); folio != "" && strings.Contains(text, folio) {
		return domain.PriorityFolio
	}
	if name := namePrefix(ticket.ClientName()); name != "" && strings.Contains(text, name) {
		return domain.PriorityClientName
	}
	return domain.PriorityAmountOnly
}

// SuggestBatch pairs each ticket with at most one transaction and each transaction with at
// most one ticket. Tickets without an amount match are omitted.
func SuggestBatch(tickets []domain.Ticket, transactions []domain.BankTransaction) []domain.MatchSuggestion {
	pool := NewPool(transactions)
	order := append([]domain.Ticket(nil), tickets...)

	suggestions := make([]domain.MatchSuggestion, 0, len(order))
	for _, ticket := range order {
		best, ok := bestCandidate(ticket, pool)
		if !ok {
			continue
		}
		pool.Remove(best.Transaction.TransactionID)
		suggestions = append(suggestions, best)
	}
	return suggestions
}

// SuggestForTicket scores every amount-matching transaction for one ticket and returns
// them best first. Nothing is withdrawn from the caller's data.
func SuggestForTicket(ticket domain.Ticket, transactions []domain.BankTransaction) []domain.MatchSuggestion {
	candidates := NewPool(transactions).WithCredit(ticket.Amount)

	suggestions := make([]domain.MatchSuggestion, 0, len(candidates))
	for _, tx := range candidates {
		suggestions = append(suggestions, newSuggestion(ticket, tx, Score(ticket, tx)))
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.BetterThan(suggestions[j].Priority)
	})
	return suggestions
}

func bestCandidate(ticket domain.Ticket, pool *Pool) (domain.MatchSuggestion, bool) {
	var (
		best  domain.MatchSuggestion
		found bool
	)
	for _, tx := range pool.WithCredit(ticket.Amount) {
		priority := Score(ticket, tx)
		if !found || priority.BetterThan(best.Priority) {
			best = newSuggestion(ticket, tx, priority)
			found = true
		}
		if priority == domain.PriorityAccountCode {
			break
		}
	}
	return best, found
}

func newSuggestion(ticket domain.Ticket, tx domain.BankTransaction, priority domain.MatchPriority) domain.MatchSuggestion {
	return domain.MatchSuggestion{
		Ticket:      ticket,
		Transaction: tx,
		Priority:    priority,
		Reason:      priority.Reason(),
	}
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func namePrefix(name string) string {
	runes := []rune(normalize(name))
	if len(runes) > NamePrefixLength {
		runes = runes[:NamePrefixLength]
	}
	return string(runes)
}
