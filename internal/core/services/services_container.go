package services

import (
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Statement = NewStatementService(repos.BankTransactionRepo)

	// Matching depends on reconciliation for auto-accept, so build it first
	container.Reconciliation = NewReconciliationService(repos.ReconciliationRepo)

	container.Matching = NewMatchingService(
		repos.TicketRepo,
		repos.BankTransactionRepo,
		container.Reconciliation,
		WithMatchPoolLimit(cfg.MatchPoolLimit),
		WithAutoAcceptMaxPriority(domain.MatchPriority(cfg.AutoAcceptMaxPriority)),
	)

	container.Discrepancy = NewDiscrepancyService(
		repos.TicketRepo,
		repos.BankTransactionRepo,
		repos.PaymentRepo,
		WithDiscrepancyWindow(cfg.DiscrepancyWindow),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StatementSvcFacade = (*statementService)(nil)
	_ portssvc.MatchingSvc        = (*matchingService)(nil)
	_ portssvc.ReconciliationSvc  = (*reconciliationService)(nil)
	_ portssvc.DiscrepancySvc     = (*discrepancyService)(nil)
)
