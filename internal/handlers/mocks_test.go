package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/statement"
	"github.com/stretchr/testify/mock"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) ImportStatements(ctx context.Context, format domain.StatementFormat, statements []statement.RawStatement, userID string) (domain.ImportSummary, error) {
	args := m.Called(ctx, format, statements, userID)
	return args.Get(0).(domain.ImportSummary), args.Error(1)
}
func (m *MockStatementService) ImportTransactions(ctx context.Context, candidates []domain.BankTransactionInput, userID string) (domain.ImportSummary, error) {
	args := m.Called(ctx, candidates, userID)
	return args.Get(0).(domain.ImportSummary), args.Error(1)
}
func (m *MockStatementService) ListUnreconciledTransactions(ctx context.Context, params dto.ListBankTransactionsParams) (*dto.ListBankTransactionsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBankTransactionsResponse), args.Error(1)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Mock MatchingService ---
type MockMatchingService struct {
	mock.Mock
}

func (m *MockMatchingService) SuggestMatches(ctx context.Context) ([]domain.MatchSuggestion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchSuggestion), args.Error(1)
}
func (m *MockMatchingService) SuggestMatchesForTicket(ctx context.Context, ticketID string) ([]domain.MatchSuggestion, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchSuggestion), args.Error(1)
}
func (m *MockMatchingService) AutoReconcile(ctx context.Context, userID string) (domain.AutoAcceptResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.AutoAcceptResult), args.Error(1)
}

var _ portssvc.MatchingSvc = (*MockMatchingService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) ConfirmMatch(ctx context.Context, ticketID, transactionID, userID string) error {
	args := m.Called(ctx, ticketID, transactionID, userID)
	return args.Error(0)
}

var _ portssvc.ReconciliationSvc = (*MockReconciliationService)(nil)

// --- Mock DiscrepancyService ---
type MockDiscrepancyService struct {
	mock.Mock
}

func (m *MockDiscrepancyService) GetDiscrepancies(ctx context.Context, from, to *time.Time) (*domain.DiscrepancyReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DiscrepancyReport), args.Error(1)
}

var _ portssvc.DiscrepancySvc = (*MockDiscrepancyService)(nil)
