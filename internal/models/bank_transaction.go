package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is a row of the bank_transactions table.
type BankTransaction struct {
	TransactionID       string          `json:"transactionID"` // Primary Key (UUID)
	OriginBank          string          `json:"originBank"`
	OperationDate       time.Time       `json:"operationDate"` // DATE
	OperationTime       *string         `json:"operationTime"` // Nullable
	Description         string          `json:"description"`
	Concept             string          `json:"concept"`
	DetailedDescription string          `json:"detailedDescription"`
	Debit               decimal.Decimal `json:"debit"`  // NUMERIC(18,2)
	Credit              decimal.Decimal `json:"credit"` // NUMERIC(18,2)
	Balance             decimal.Decimal `json:"balance"`
	Reference           *string         `json:"reference"`
	TrackingKey         *string         `json:"trackingKey"` // Unique when not null
	SourceFormat        string          `json:"sourceFormat"`
	TicketID            *string         `json:"ticketID"` // Unique when not null
	IdentifiedAt        *time.Time      `json:"identifiedAt"`
	AuditFields
}
