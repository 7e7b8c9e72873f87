package services

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/statement"
)

// StatementImportSvc defines statement ingestion operations
type StatementImportSvc interface {
	// ImportStatements parses the given files with one format and imports the credits found.
	// It fails with ErrNoIncomeRecords when the files yield no credit rows at all.
	ImportStatements(ctx context.Context, format domain.StatementFormat, statements []statement.RawStatement, userID string) (domain.ImportSummary, error)

	// ImportTransactions persists parsed candidates, skipping tracking-key duplicates.
	// Per-record failures are counted, never returned.
	ImportTransactions(ctx context.Context, candidates []domain.BankTransactionInput, userID string) (domain.ImportSummary, error)
}

// BankTransactionReaderSvc defines read operations for imported transactions
type BankTransactionReaderSvc interface {
	// ListUnreconciledTransactions retrieves a page of unlinked transactions.
	ListUnreconciledTransactions(ctx context.Context, params dto.ListBankTransactionsParams) (*dto.ListBankTransactionsResponse, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	StatementImportSvc
	BankTransactionReaderSvc
}
