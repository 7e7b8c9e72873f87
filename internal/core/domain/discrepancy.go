package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a collected payment from the external payment ledger. Read only here.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	Amount      decimal.Decimal `json:"amount"`
	BankSettled bool            `json:"bankSettled"`
	TicketID    *string         `json:"ticketID,omitempty"`
	ClientID    string          `json:"clientID"`
	PaidAt      time.Time       `json:"paidAt"`
}

// DiscrepancySummary carries the count and amount totals of each bucket.
type DiscrepancySummary struct {
	TicketsWithoutBankCount  int             `json:"totalTicketsSinBanco"`
	TicketsWithoutBankAmount decimal.Decimal `json:"montoTicketsSinBanco"`
	BankWithoutTicketCount   int             `json:"totalBancosSinTicket"`
	BankWithoutTicketAmount  decimal.Decimal `json:"montoBancosSinTicket"`
	OrphanPaymentsCount      int             `json:"totalPagosHuerfanos"`
	OrphanPaymentsAmount     decimal.Decimal `json:"montoPagosHuerfanos"`
}

// DiscrepancyReport is the three-way diagnostic view over a date window.
type DiscrepancyReport struct {
	Window             DateWindow         `json:"window"`
	TicketsWithoutBank []Ticket           `json:"ticketsSinBanco"`
	BankWithoutTicket  []BankTransaction  `json:"bancosSinTicket"`
	OrphanPayments     []Payment          `json:"pagosHuerfanos"`
	Summary            DiscrepancySummary `json:"summary"`
}
