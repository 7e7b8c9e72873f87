package dto

import (
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankTransactionResponse defines the data returned for a bank transaction.
type BankTransactionResponse struct {
	TransactionID       string          `json:"transactionID"`
	OriginBank          string          `json:"originBank"`
	OperationDate       string          `json:"operationDate"` // YYYY-MM-DD
	OperationTime       *string         `json:"operationTime,omitempty"`
	Description         string          `json:"description"`
	Concept             string          `json:"concept"`
	DetailedDescription string          `json:"detailedDescription"`
	Debit               decimal.Decimal `json:"debit"`
	Credit              decimal.Decimal `json:"credit"`
	Balance             decimal.Decimal `json:"balance"`
	Reference           *string         `json:"reference,omitempty"`
	TrackingKey         *string         `json:"trackingKey,omitempty"`
	SourceFormat        string          `json:"sourceFormat"`
	TicketID            *string         `json:"ticketID,omitempty"`
	IdentifiedAt        *time.Time      `json:"identifiedAt,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ListBankTransactionsParams defines query parameters for listing unreconciled transactions.
type ListBankTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// ListBankTransactionsResponse wraps a page of transactions.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToBankTransactionResponse converts a domain.BankTransaction to BankTransactionResponse
func ToBankTransactionResponse(tx domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		TransactionID:       tx.TransactionID,
		OriginBank:          tx.OriginBank,
		OperationDate:       tx.OperationDate.Format(time.DateOnly),
		OperationTime:       tx.OperationTime,
		Description:         tx.Description,
		Concept:             tx.Concept,
		DetailedDescription: tx.DetailedDescription,
		Debit:               tx.Debit,
		Credit:              tx.Credit,
		Balance:             tx.Balance,
		Reference:           tx.Reference,
		TrackingKey:         tx.TrackingKey,
		SourceFormat:        string(tx.SourceFormat),
		TicketID:            tx.TicketID,
		IdentifiedAt:        tx.IdentifiedAt,
		CreatedAt:           tx.CreatedAt,
	}
}

// ToListBankTransactionsResponse converts a page of domain transactions.
func ToListBankTransactionsResponse(txs []domain.BankTransaction, nextToken *string) ListBankTransactionsResponse {
	list := make([]BankTransactionResponse, len(txs))
	for i, tx := range txs {
		list[i] = ToBankTransactionResponse(tx)
	}
	return ListBankTransactionsResponse{Transactions: list, NextToken: nextToken}
}
