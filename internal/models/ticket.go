package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket is a row of the tickets table joined with its client.
// The client columns are nullable because the join is a LEFT JOIN.
type Ticket struct {
	TicketID    string
	Amount      decimal.Decimal
	Folio       *string
	Reference   *string
	ClientID    string
	OccurredAt  time.Time
	Reconciled  bool
	TrackingKey *string
	CreatedAt   time.Time

	ClientAccountCode *string
	ClientFullName    *string
	ClientFound       bool
}

// Payment is a row of the payments ledger table.
type Payment struct {
	PaymentID string
	Amount    decimal.Decimal
	Method    string
	TicketID  *string
	ClientID  string
	PaidAt    time.Time
}
