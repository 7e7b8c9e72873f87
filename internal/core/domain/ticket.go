package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientRef carries the client attributes the matcher scores against.
// It is resolved from the externally owned client record.
type ClientRef struct {
	ClientID    string `json:"clientID"`
	AccountCode string `json:"accountCode"` // Account / contract code
	FullName    string `json:"fullName"`
}

// Ticket is a claimed payment awaiting bank confirmation.
type Ticket struct {
	TicketID    string          `json:"ticketID"`
	Amount      decimal.Decimal `json:"amount"` // Immutable once created
	Folio       *string         `json:"folio,omitempty"`
	Reference   *string         `json:"reference,omitempty"`
	ClientID    string          `json:"clientID"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Reconciled  bool            `json:"reconciled"`
	TrackingKey *string         `json:"trackingKey,omitempty"`
	Client      *ClientRef      `json:"client,omitempty"` // Nil when the client lookup found nothing
	CreatedAt   time.Time       `json:"createdAt"`
}

// AccountCode returns the client's account code or "" when no client is attached.
func (t Ticket) AccountCode() string {
	if t.Client == nil {
		return ""
	}
	return t.Client.AccountCode
}

// ClientName returns the client's full name or "" when no client is attached.
func (t Ticket) ClientName() string {
	if t.Client == nil {
		return ""
	}
	return t.Client.FullName
}

// FolioValue returns the folio or "" when absent.
func (t Ticket) FolioValue() string {
	if t.Folio == nil {
		return ""
	}
	return *t.Folio
}
