package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one credit line of a bank statement, as persisted.
type BankTransaction struct {
	TransactionID       string          `json:"transactionID"`
	OriginBank          string          `json:"originBank"`
	OperationDate       time.Time       `json:"operationDate"`
	OperationTime       *string         `json:"operationTime,omitempty"` // HH:MM[:SS]
	Description         string          `json:"description"`
	Concept             string          `json:"concept"`
	DetailedDescription string          `json:"detailedDescription"`
	Debit               decimal.Decimal `json:"debit"`
	Credit              decimal.Decimal `json:"credit"`
	Balance             decimal.Decimal `json:"balance"`
	Reference           *string         `json:"reference,omitempty"`
	TrackingKey         *string         `json:"trackingKey,omitempty"` // Unique when present
	SourceFormat        StatementFormat `json:"sourceFormat"`
	TicketID            *string         `json:"ticketID,omitempty"` // Non-nil iff reconciled
	IdentifiedAt        *time.Time      `json:"identifiedAt,omitempty"`
	AuditFields
}

// IsReconciled reports whether the transaction is linked to a ticket.
func (t BankTransaction) IsReconciled() bool {
	return t.TicketID != nil
}

// SearchText is the text the matcher inspects for ticket signals.
func (t BankTransaction) SearchText() string {
	return t.Concept + " " + t.DetailedDescription + " " + t.Description
}

// BankTransactionInput is the pending-insert shape produced by statement parsers.
// It carries no identity, link or audit data; the import service assigns those.
type BankTransactionInput struct {
	OriginBank          string
	OperationDate       time.Time
	OperationTime       *string
	Description         string
	Concept             string
	DetailedDescription string
	Debit               decimal.Decimal
	Credit              decimal.Decimal
	Balance             decimal.Decimal
	Reference           *string
	TrackingKey         *string
	SourceFormat        StatementFormat
}

// StatementFormat identifies a bank statement export layout.
type StatementFormat string

const (
	FormatSantander StatementFormat = "SANTANDER"
	FormatBanorte   StatementFormat = "BANORTE"
)

// ImportSummary reports the outcome of importing a batch of parsed transactions.
type ImportSummary struct {
	Total      int `json:"total"`
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Add accumulates another summary into s.
func (s *ImportSummary) Add(other ImportSummary) {
	s.Total += other.Total
	s.Inserted += other.Inserted
	s.Duplicates += other.Duplicates
	s.Errors += other.Errors
}
