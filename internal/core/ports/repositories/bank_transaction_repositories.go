package repositories

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// BankTransactionReader defines read operations for bank transaction data
type BankTransactionReader interface {
	// FindBankTransactionByID retrieves a specific bank transaction by its ID.
	FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error)

	// FindBankTransactionByTrackingKey retrieves the transaction holding a tracking key.
	// Returns apperrors.ErrNotFound when no stored transaction has it.
	FindBankTransactionByTrackingKey(ctx context.Context, trackingKey string) (*domain.BankTransaction, error)

	// ListUnreconciledBankTransactions retrieves the most recent unlinked transactions, newest first.
	// A limit <= 0 means no limit.
	ListUnreconciledBankTransactions(ctx context.Context, limit int) ([]domain.BankTransaction, error)

	// ListUnreconciledBankTransactionsPage retrieves unlinked transactions using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListUnreconciledBankTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.BankTransaction, *string, error)

	// ListUnlinkedCreditsBetween retrieves unlinked transactions with a positive credit whose
	// operation date falls inside the window.
	ListUnlinkedCreditsBetween(ctx context.Context, window domain.DateWindow) ([]domain.BankTransaction, error)
}

// BankTransactionWriter defines write operations for bank transaction data
type BankTransactionWriter interface {
	// SaveBankTransaction persists a new bank transaction.
	SaveBankTransaction(ctx context.Context, transaction domain.BankTransaction) error
}

// BankTransactionRepositoryFacade combines all bank transaction repository interfaces
type BankTransactionRepositoryFacade interface {
	BankTransactionReader
	BankTransactionWriter
}
