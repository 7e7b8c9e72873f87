package domain

// MatchPriority ranks the signal that justified a suggestion. Lower is better.
type MatchPriority int

const (
	PriorityAccountCode MatchPriority = 1 // Client account/contract code found in bank text
	PriorityFolio       MatchPriority = 2 // Ticket folio found in bank text
	PriorityClientName  MatchPriority = 3 // First 15 characters of the client name found
	// PriorityTimeProximity is reserved for a time-proximity signal. No matcher emits it.
	PriorityTimeProximity MatchPriority = 4
	PriorityAmountOnly    MatchPriority = 5 // Only the amount coincides
)

// Reason returns the human readable explanation for the priority.
func (p MatchPriority) Reason() string {
	switch p {
	case PriorityAccountCode:
		return "client account code found in bank description"
	case PriorityFolio:
		return "ticket folio found in bank description"
	case PriorityClientName:
		return "client name found in bank description"
	case PriorityTimeProximity:
		return "operation time close to ticket time"
	case PriorityAmountOnly:
		return "amount matches"
	default:
		return "unknown"
	}
}

// BetterThan reports whether p ranks strictly ahead of other.
func (p MatchPriority) BetterThan(other MatchPriority) bool {
	return p < other
}

// MatchSuggestion is an ephemeral pairing of a ticket and a bank transaction. Never persisted.
type MatchSuggestion struct {
	Ticket      Ticket          `json:"ticket"`
	Transaction BankTransaction `json:"transaction"`
	Priority    MatchPriority   `json:"priority"`
	Reason      string          `json:"reason"`
}

// AutoAcceptResult summarises an automatic batch accept run.
type AutoAcceptResult struct {
	Suggested int `json:"suggested"`
	Confirmed int `json:"confirmed"`
	Skipped   int `json:"skipped"` // Suggestions below the auto-accept threshold
	Failed    int `json:"failed"`
}
