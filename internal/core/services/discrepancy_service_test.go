package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DiscrepancyServiceTestSuite struct {
	suite.Suite
	mockTickets  *MockTicketRepository
	mockTxs      *MockBankTransactionRepository
	mockPayments *MockPaymentRepository
	service      portssvc.DiscrepancySvc
	ctx          context.Context
	now          time.Time
}

func (s *DiscrepancyServiceTestSuite) SetupTest() {
	s.mockTickets = new(MockTicketRepository)
	s.mockTxs = new(MockBankTransactionRepository)
	s.mockPayments = new(MockPaymentRepository)
	s.now = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	s.service = services.NewDiscrepancyService(s.mockTickets, s.mockTxs, s.mockPayments,
		services.WithDiscrepancyWindow(30*24*time.Hour),
		services.WithDiscrepancyClock(func() time.Time { return s.now }))
	s.ctx = context.Background()
}

func TestDiscrepancyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiscrepancyServiceTestSuite))
}

func (s *DiscrepancyServiceTestSuite) TestGetDiscrepancies_DefaultWindowAndSums() {
	want := domain.DateWindow{From: s.now.Add(-30 * 24 * time.Hour), To: s.now}
	s.mockTickets.On("ListUnreconciledTicketsBetween", mock.Anything, want).Return([]domain.Ticket{
		{TicketID: "t1", Amount: decimal.NewFromInt(100)},
		{TicketID: "t2", Amount: decimal.NewFromInt(200)},
	}, nil).Once()
	s.mockTxs.On("ListUnlinkedCreditsBetween", mock.Anything, want).Return([]domain.BankTransaction{
		{TransactionID: "x1", Credit: decimal.RequireFromString("10.25")},
	}, nil).Once()
	s.mockPayments.On("ListOrphanBankPayments", mock.Anything, want).Return(nil, nil).Once()

	report, err := s.service.GetDiscrepancies(s.ctx, nil, nil)

	s.Require().NoError(err)
	s.Equal(want, report.Window)
	s.Equal(2, report.Summary.TicketsWithoutBankCount)
	s.True(report.Summary.TicketsWithoutBankAmount.Equal(decimal.NewFromInt(300)))
	s.Equal(1, report.Summary.BankWithoutTicketCount)
	s.True(report.Summary.BankWithoutTicketAmount.Equal(decimal.RequireFromString("10.25")))
	s.Equal(0, report.Summary.OrphanPaymentsCount)
	s.True(report.Summary.OrphanPaymentsAmount.IsZero())
	s.NotNil(report.OrphanPayments)
}

func (s *DiscrepancyServiceTestSuite) TestGetDiscrepancies_ExplicitBounds() {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	want := domain.DateWindow{From: from, To: to}
	s.mockTickets.On("ListUnreconciledTicketsBetween", mock.Anything, want).Return([]domain.Ticket{}, nil).Once()
	s.mockTxs.On("ListUnlinkedCreditsBetween", mock.Anything, want).Return([]domain.BankTransaction{}, nil).Once()
	s.mockPayments.On("ListOrphanBankPayments", mock.Anything, want).Return([]domain.Payment{}, nil).Once()

	report, err := s.service.GetDiscrepancies(s.ctx, &from, &to)

	s.Require().NoError(err)
	s.Equal(want, report.Window)
}

func (s *DiscrepancyServiceTestSuite) TestGetDiscrepancies_InvertedWindow() {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.service.GetDiscrepancies(s.ctx, &from, &to)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockTickets.AssertNotCalled(s.T(), "ListUnreconciledTicketsBetween", mock.Anything, mock.Anything)
}

func (s *DiscrepancyServiceTestSuite) TestGetDiscrepancies_QueryFailure() {
	s.mockTickets.On("ListUnreconciledTicketsBetween", mock.Anything, mock.Anything).Return([]domain.Ticket{}, nil).Maybe()
	s.mockTxs.On("ListUnlinkedCreditsBetween", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	s.mockPayments.On("ListOrphanBankPayments", mock.Anything, mock.Anything).Return([]domain.Payment{}, nil).Maybe()

	report, err := s.service.GetDiscrepancies(s.ctx, nil, nil)

	s.Error(err)
	s.Nil(report)
}
