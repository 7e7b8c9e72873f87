package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultDiscrepancyWindow = 30 * 24 * time.Hour

type discrepancyService struct {
	BaseService
	ticketRepo  portsrepo.TicketReader
	txRepo      portsrepo.BankTransactionReader
	paymentRepo portsrepo.PaymentReader
	window      time.Duration
	now         func() time.Time
}

// DiscrepancyServiceOption is a functional option for configuring the discrepancy service
type DiscrepancyServiceOption func(*discrepancyService)

// WithDiscrepancyWindow sets the trailing window used when the caller gives no bounds
func WithDiscrepancyWindow(window time.Duration) DiscrepancyServiceOption {
	return func(s *discrepancyService) {
		if window > 0 {
			s.window = window
		}
	}
}

// WithDiscrepancyClock overrides the clock used to anchor the default window
func WithDiscrepancyClock(now func() time.Time) DiscrepancyServiceOption {
	return func(s *discrepancyService) {
		s.now = now
	}
}

// NewDiscrepancyService creates a new discrepancy service
func NewDiscrepancyService(ticketRepo portsrepo.TicketReader, txRepo portsrepo.BankTransactionReader, paymentRepo portsrepo.PaymentReader, options ...DiscrepancyServiceOption) portssvc.DiscrepancySvc {
	svc := &discrepancyService{
		ticketRepo:  ticketRepo,
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		window:      defaultDiscrepancyWindow,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// GetDiscrepancies runs the three bucket queries independently; the buckets are not
// cross-referenced.
func (s *discrepancyService) GetDiscrepancies(ctx context.Context, from, to *time.Time) (*domain.DiscrepancyReport, error) {
	window, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	var (
		tickets  []domain.Ticket
		txs      []domain.BankTransaction
		payments []domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if tickets, err = s.ticketRepo.ListUnreconciledTicketsBetween(gctx, window); err != nil {
			return fmt.Errorf("failed to list unreconciled tickets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if txs, err = s.txRepo.ListUnlinkedCreditsBetween(gctx, window); err != nil {
			return fmt.Errorf("failed to list unlinked bank credits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if payments, err = s.paymentRepo.ListOrphanBankPayments(gctx, window); err != nil {
			return fmt.Errorf("failed to list orphan payments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build discrepancy report")
		return nil, err
	}

	report := &domain.DiscrepancyReport{
		Window:             window,
		TicketsWithoutBank: nonNil(tickets),
		BankWithoutTicket:  nonNil(txs),
		OrphanPayments:     nonNil(payments),
		Summary:            summarize(tickets, txs, payments),
	}

	s.LogInfo(ctx, "Discrepancy report built",
		slog.Time("from", window.From),
		slog.Time("to", window.To),
		slog.Int("tickets_without_bank", report.Summary.TicketsWithoutBankCount),
		slog.Int("bank_without_ticket", report.Summary.BankWithoutTicketCount),
		slog.Int("orphan_payments", report.Summary.OrphanPaymentsCount))
	return report, nil
}

// resolveWindow fills missing bounds from the trailing default window.
func (s *discrepancyService) resolveWindow(from, to *time.Time) (domain.DateWindow, error) {
	end := s.now().UTC()
	if to != nil {
		end = *to
	}
	window := domain.TrailingWindow(end, s.window)
	if from != nil {
		window.From = *from
	}
	if window.From.After(window.To) {
		return domain.DateWindow{}, apperrors.NewValidationError("from must not be after to")
	}
	return window, nil
}

func summarize(tickets []domain.Ticket, txs []domain.BankTransaction, payments []domain.Payment) domain.DiscrepancySummary {
	summary := domain.DiscrepancySummary{
		TicketsWithoutBankCount:  len(tickets),
		TicketsWithoutBankAmount: decimal.Zero,
		BankWithoutTicketCount:   len(txs),
		BankWithoutTicketAmount:  decimal.Zero,
		OrphanPaymentsCount:      len(payments),
		OrphanPaymentsAmount:     decimal.Zero,
	}
	for _, t := range tickets {
		summary.TicketsWithoutBankAmount = summary.TicketsWithoutBankAmount.Add(t.Amount)
	}
	for _, tx := range txs {
		summary.BankWithoutTicketAmount = summary.BankWithoutTicketAmount.Add(tx.Credit)
	}
	for _, p := range payments {
		summary.OrphanPaymentsAmount = summary.OrphanPaymentsAmount.Add(p.Amount)
	}
	return summary
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
