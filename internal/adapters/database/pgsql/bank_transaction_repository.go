package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/SscSPs/collections_reconciliation/internal/models"
	"github.com/SscSPs/collections_reconciliation/internal/utils/mapping"
	"github.com/SscSPs/collections_reconciliation/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bankTransactionColumns = `
	transaction_id, origin_bank, operation_date, operation_time, description, concept,
	detailed_description, debit, credit, balance, reference, tracking_key, source_format,
	ticket_id, identified_at, created_at, created_by, last_updated_at, last_updated_by
`

// Rows are ordered newest first; transaction_id makes the order total for pagination.
const bankTransactionOrder = `ORDER BY operation_date DESC, created_at DESC, transaction_id DESC`

type PgxBankTransactionRepository struct {
	BaseRepository
}

// newPgxBankTransactionRepository creates a new repository for imported bank transactions.
func newPgxBankTransactionRepository(pool *pgxpool.Pool) portsrepo.BankTransactionRepositoryFacade {
	return &PgxBankTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankTransactionRepositoryFacade = (*PgxBankTransactionRepository)(nil)

// SaveBankTransaction inserts a new bank transaction.
// A tracking key that is already stored surfaces as apperrors.ErrDuplicate.
func (r *PgxBankTransactionRepository) SaveBankTransaction(ctx context.Context, transaction domain.BankTransaction) error {
	m := mapping.ToModelBankTransaction(transaction)
	query := `INSERT INTO bank_transactions (` + bankTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);`

	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OriginBank,
		m.OperationDate,
		m.OperationTime,
		m.Description,
		m.Concept,
		m.DetailedDescription,
		m.Debit,
		m.Credit,
		m.Balance,
		m.Reference,
		m.TrackingKey,
		m.SourceFormat,
		m.TicketID,
		m.IdentifiedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "bank transaction already stored", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert bank transaction "+m.TransactionID, err)
	}
	return nil
}

// FindBankTransactionByID retrieves a bank transaction by its ID.
func (r *PgxBankTransactionRepository) FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error) {
	return r.findOne(ctx, `WHERE transaction_id = $1`, transactionID)
}

// FindBankTransactionByTrackingKey retrieves the bank transaction holding a tracking key.
func (r *PgxBankTransactionRepository) FindBankTransactionByTrackingKey(ctx context.Context, trackingKey string) (*domain.BankTransaction, error) {
	return r.findOne(ctx, `WHERE tracking_key = $1`, trackingKey)
}

func (r *PgxBankTransactionRepository) findOne(ctx context.Context, where string, arg string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions ` + where + `;`
	m, err := scanBankTransaction(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank transaction not found: " + arg)
		}
		return nil, apperrors.NewAppError(500, "failed to find bank transaction "+arg, err)
	}
	tx := mapping.ToDomainBankTransaction(m)
	return &tx, nil
}

// ListUnreconciledBankTransactions retrieves the most recent unlinked transactions.
func (r *PgxBankTransactionRepository) ListUnreconciledBankTransactions(ctx context.Context, limit int) ([]domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions
		WHERE ticket_id IS NULL ` + bankTransactionOrder + ` LIMIT $1;`
	return r.queryTransactions(ctx, query, limitArg(limit))
}

// ListUnreconciledBankTransactionsPage retrieves unlinked transactions using token-based pagination.
func (r *PgxBankTransactionRepository) ListUnreconciledBankTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	var (
		txs []domain.BankTransaction
		err error
	)
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions
			WHERE ticket_id IS NULL AND (operation_date, created_at, transaction_id) < ($1, $2, $3)
			` + bankTransactionOrder + ` LIMIT $4;`
		txs, err = r.queryTransactions(ctx, query, cursor.OperationDate, cursor.CreatedAt, cursor.ID, fetchLimit)
	} else {
		query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions
			WHERE ticket_id IS NULL ` + bankTransactionOrder + ` LIMIT $1;`
		txs, err = r.queryTransactions(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, err
	}

	if len(txs) <= limit {
		return txs, nil, nil
	}
	page := txs[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{
		OperationDate: last.OperationDate,
		CreatedAt:     last.CreatedAt,
		ID:            last.TransactionID,
	})
	return page, &token, nil
}

// ListUnlinkedCreditsBetween retrieves unlinked positive credits dated inside the window.
func (r *PgxBankTransactionRepository) ListUnlinkedCreditsBetween(ctx context.Context, window domain.DateWindow) ([]domain.BankTransaction, error) {
	query := `SELECT ` + bankTransactionColumns + ` FROM bank_transactions
		WHERE ticket_id IS NULL AND credit > 0 AND operation_date BETWEEN $1 AND $2
		` + bankTransactionOrder + `;`
	return r.queryTransactions(ctx, query, window.From, window.To)
}

func (r *PgxBankTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.BankTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank transactions", err)
	}
	defer rows.Close()

	ms := make([]models.BankTransaction, 0)
	for rows.Next() {
		m, err := scanBankTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank transaction row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank transaction rows", err)
	}
	return mapping.ToDomainBankTransactionSlice(ms), nil
}

func scanBankTransaction(row pgx.Row) (models.BankTransaction, error) {
	var m models.BankTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.OriginBank,
		&m.OperationDate,
		&m.OperationTime,
		&m.Description,
		&m.Concept,
		&m.DetailedDescription,
		&m.Debit,
		&m.Credit,
		&m.Balance,
		&m.Reference,
		&m.TrackingKey,
		&m.SourceFormat,
		&m.TicketID,
		&m.IdentifiedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
