package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/statement"
	"github.com/google/uuid"
)

// ErrNoIncomeRecords is returned when uploaded statements contain no credit rows at all.
var ErrNoIncomeRecords = fmt.Errorf("no income records found: %w", apperrors.ErrValidation)

const defaultBankTransactionPageSize = 20

// statementService implements the StatementSvcFacade interface
type statementService struct {
	BaseService
	txRepo portsrepo.BankTransactionRepositoryFacade
	now    func() time.Time
	newID  func() string
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementClock overrides the clock used for audit timestamps
func WithStatementClock(now func() time.Time) StatementServiceOption {
	return func(s *statementService) {
		s.now = now
	}
}

// WithStatementIDGenerator overrides how new transaction IDs are minted
func WithStatementIDGenerator(newID func() string) StatementServiceOption {
	return func(s *statementService) {
		s.newID = newID
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(repo portsrepo.BankTransactionRepositoryFacade, options ...StatementServiceOption) portssvc.StatementSvcFacade {
	svc := &statementService{
		txRepo: repo,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// ImportStatements parses every file with the same layout and imports the credits found.
func (s *statementService) ImportStatements(ctx context.Context, format domain.StatementFormat, statements []statement.RawStatement, userID string) (domain.ImportSummary, error) {
	candidates, err := statement.ParseAll(ctx, format, statements)
	if err != nil {
		s.LogError(ctx, err, "Failed to parse statements", slog.String("format", string(format)), slog.Int("files", len(statements)))
		return domain.ImportSummary{}, err
	}
	if len(candidates) == 0 {
		s.LogInfo(ctx, "Statements contained no income records", slog.String("format", string(format)), slog.Int("files", len(statements)))
		return domain.ImportSummary{}, ErrNoIncomeRecords
	}
	return s.ImportTransactions(ctx, candidates, userID)
}

// ImportTransactions stores each candidate whose tracking key is not already known.
// Candidates without a tracking key are always inserted.
func (s *statementService) ImportTransactions(ctx context.Context, candidates []domain.BankTransactionInput, userID string) (domain.ImportSummary, error) {
	summary := domain.ImportSummary{Total: len(candidates)}

	for i, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			// Records not attempted are reported as errors rather than silently dropped.
			summary.Errors += len(candidates) - i
			s.LogWarn(ctx, "Import interrupted", slog.String("error", err.Error()), slog.Int("remaining", len(candidates)-i))
			break
		}

		if candidate.TrackingKey != nil && *candidate.TrackingKey != "" {
			_, err := s.txRepo.FindBankTransactionByTrackingKey(ctx, *candidate.TrackingKey)
			switch {
			case err == nil:
				summary.Duplicates++
				continue
			case !errors.Is(err, apperrors.ErrNotFound):
				summary.Errors++
				s.LogWarn(ctx, "Failed to look up tracking key", slog.String("error", err.Error()), slog.String("tracking_key", *candidate.TrackingKey))
				continue
			}
		}

		tx := s.newBankTransaction(candidate, userID)
		if err := s.txRepo.SaveBankTransaction(ctx, tx); err != nil {
			summary.Errors++
			s.LogWarn(ctx, "Failed to insert bank transaction", slog.String("error", err.Error()), slog.Int("row", i))
			continue
		}
		summary.Inserted++
	}

	s.LogInfo(ctx, "Bank transactions imported",
		slog.Int("total", summary.Total),
		slog.Int("inserted", summary.Inserted),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("errors", summary.Errors))
	return summary, nil
}

func (s *statementService) newBankTransaction(in domain.BankTransactionInput, userID string) domain.BankTransaction {
	now := s.now().UTC()
	trackingKey := in.TrackingKey
	if trackingKey != nil && *trackingKey == "" {
		trackingKey = nil
	}
	return domain.BankTransaction{
		TransactionID:       s.newID(),
		OriginBank:          in.OriginBank,
		OperationDate:       in.OperationDate,
		OperationTime:       in.OperationTime,
		Description:         in.Description,
		Concept:             in.Concept,
		DetailedDescription: in.DetailedDescription,
		Debit:               in.Debit,
		Credit:              in.Credit,
		Balance:             in.Balance,
		Reference:           in.Reference,
		TrackingKey:         trackingKey,
		SourceFormat:        in.SourceFormat,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// ListUnreconciledTransactions retrieves a page of transactions not yet linked to a ticket.
func (s *statementService) ListUnreconciledTransactions(ctx context.Context, params dto.ListBankTransactionsParams) (*dto.ListBankTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultBankTransactionPageSize
	}

	txs, nextToken, err := s.txRepo.ListUnreconciledBankTransactionsPage(ctx, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list unreconciled bank transactions", slog.Int("limit", limit))
		}
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	resp := dto.ToListBankTransactionsResponse(txs, nextToken)
	return &resp, nil
}
