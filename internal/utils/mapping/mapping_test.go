package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTicket_ClientAttachedOnlyWhenFound(t *testing.T) {
	code, name := "CTR-1", "Rosa Martinez"
	row := models.Ticket{
		TicketID:          "t1",
		Amount:            decimal.RequireFromString("99.90"),
		ClientID:          "c1",
		OccurredAt:        time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		ClientAccountCode: &code,
		ClientFullName:    &name,
		ClientFound:       true,
	}

	ticket := ToDomainTicket(row)
	require.NotNil(t, ticket.Client)
	assert.Equal(t, "CTR-1", ticket.AccountCode())
	assert.Equal(t, "Rosa Martinez", ticket.ClientName())

	row.ClientFound = false
	assert.Nil(t, ToDomainTicket(row).Client)
}

func TestToDomainPayment_BankSettledFromMethod(t *testing.T) {
	assert.True(t, ToDomainPayment(models.Payment{Method: PaymentMethodBank}).BankSettled)
	assert.False(t, ToDomainPayment(models.Payment{Method: "CASH"}).BankSettled)
}
