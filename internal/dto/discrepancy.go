package dto

import (
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// DiscrepancyParams are the optional window bounds of a discrepancy report, as YYYY-MM-DD.
// Both bounds are inclusive days.
type DiscrepancyParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// DiscrepancyResponse is the three-bucket diagnostic report.
type DiscrepancyResponse struct {
	FromDate           string                    `json:"fromDate"`
	ToDate             string                    `json:"toDate"`
	TicketsWithoutBank []domain.Ticket           `json:"ticketsSinBanco"`
	BankWithoutTicket  []BankTransactionResponse `json:"bancosSinTicket"`
	OrphanPayments     []domain.Payment          `json:"pagosHuerfanos"`
	Summary            domain.DiscrepancySummary `json:"summary"`
}

// ToDiscrepancyResponse converts a domain report.
func ToDiscrepancyResponse(r *domain.DiscrepancyReport) DiscrepancyResponse {
	bank := make([]BankTransactionResponse, len(r.BankWithoutTicket))
	for i, tx := range r.BankWithoutTicket {
		bank[i] = ToBankTransactionResponse(tx)
	}
	tickets := r.TicketsWithoutBank
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	payments := r.OrphanPayments
	if payments == nil {
		payments = []domain.Payment{}
	}
	return DiscrepancyResponse{
		FromDate:           r.Window.From.Format(time.DateOnly),
		ToDate:             r.Window.To.Format(time.DateOnly),
		TicketsWithoutBank: tickets,
		BankWithoutTicket:  bank,
		OrphanPayments:     payments,
		Summary:            r.Summary,
	}
}
