package pgsql

import (
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TicketRepo:          newPgxTicketRepository(dbPool),
		BankTransactionRepo: newPgxBankTransactionRepository(dbPool),
		PaymentRepo:         newPgxPaymentRepository(dbPool),
		ReconciliationRepo:  newPgxReconciliationRepository(dbPool),
	}
}
