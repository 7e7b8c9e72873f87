package mapping

import (
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/SscSPs/collections_reconciliation/internal/models"
)

// PaymentMethodBank is the payments.method value for money settled through a bank.
const PaymentMethodBank = "BANK"

// ToDomainTicket converts a joined ticket row to a domain Ticket.
// The client reference is only attached when the join found a client.
func ToDomainTicket(m models.Ticket) domain.Ticket {
	t := domain.Ticket{
		TicketID:    m.TicketID,
		Amount:      m.Amount,
		Folio:       m.Folio,
		Reference:   m.Reference,
		ClientID:    m.ClientID,
		OccurredAt:  m.OccurredAt,
		Reconciled:  m.Reconciled,
		TrackingKey: m.TrackingKey,
		CreatedAt:   m.CreatedAt,
	}
	if m.ClientFound {
		t.Client = &domain.ClientRef{
			ClientID:    m.ClientID,
			AccountCode: deref(m.ClientAccountCode),
			FullName:    deref(m.ClientFullName),
		}
	}
	return t
}

// ToDomainTicketSlice converts a slice of model Ticket to a slice of domain Ticket
func ToDomainTicketSlice(ms []models.Ticket) []domain.Ticket {
	ds := make([]domain.Ticket, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTicket(m)
	}
	return ds
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		Amount:      m.Amount,
		BankSettled: m.Method == PaymentMethodBank,
		TicketID:    m.TicketID,
		ClientID:    m.ClientID,
		PaidAt:      m.PaidAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
