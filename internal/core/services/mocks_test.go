package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankTransactionRepository ---
type MockBankTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.BankTransactionRepositoryFacade = (*MockBankTransactionRepository)(nil)

func (m *MockBankTransactionRepository) FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) FindBankTransactionByTrackingKey(ctx context.Context, trackingKey string) (*domain.BankTransaction, error) {
	args := m.Called(ctx, trackingKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) ListUnreconciledBankTransactions(ctx context.Context, limit int) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) ListUnreconciledBankTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.BankTransaction), returnedNextToken, args.Error(2)
}

func (m *MockBankTransactionRepository) ListUnlinkedCreditsBetween(ctx context.Context, window domain.DateWindow) ([]domain.BankTransaction, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankTransaction), args.Error(1)
}

func (m *MockBankTransactionRepository) SaveBankTransaction(ctx context.Context, tx domain.BankTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TicketRepository ---
type MockTicketRepository struct {
	mock.Mock
}

var _ portsrepo.TicketRepositoryFacade = (*MockTicketRepository)(nil)

func (m *MockTicketRepository) FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListUnreconciledTickets(ctx context.Context, limit int) ([]domain.Ticket, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListUnreconciledTicketsBetween(ctx context.Context, window domain.DateWindow) ([]domain.Ticket, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentReader = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) ListOrphanBankPayments(ctx context.Context, window domain.DateWindow) ([]domain.Payment, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock ReconciliationLinker ---
type MockReconciliationLinker struct {
	mock.Mock
}

var _ portsrepo.ReconciliationLinker = (*MockReconciliationLinker)(nil)

func (m *MockReconciliationLinker) LinkTicketToTransaction(ctx context.Context, ticketID, transactionID string, identifiedAt time.Time, userID string) error {
	args := m.Called(ctx, ticketID, transactionID, identifiedAt, userID)
	return args.Error(0)
}

// --- Mock ReconciliationSvc ---
type MockReconciliationSvc struct {
	mock.Mock
}

var _ portssvc.ReconciliationSvc = (*MockReconciliationSvc)(nil)

func (m *MockReconciliationSvc) ConfirmMatch(ctx context.Context, ticketID, transactionID, userID string) error {
	args := m.Called(ctx, ticketID, transactionID, userID)
	return args.Error(0)
}
