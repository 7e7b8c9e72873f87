// Package inmem provides an in-memory implementation of the repository ports.
// It backs the service tests and local demos; production uses the pgsql package.
//
// All reads return copies, so callers never alias stored records. Fault injection hooks
// let tests fail a write part-way through and observe that nothing leaked.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portsrepo "github.com/SscSPs/collections_reconciliation/internal/core/ports/repositories"
	"github.com/SscSPs/collections_reconciliation/internal/utils/pagination"
)

// Store holds tickets, clients, bank transactions and payments in memory.
type Store struct {
	mu           sync.RWMutex
	clients      map[string]domain.ClientRef
	tickets      map[string]domain.Ticket
	transactions map[string]domain.BankTransaction
	trackingKeys map[string]string // tracking key -> transaction ID
	payments     []domain.Payment

	saveErr    error
	midLinkErr error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		clients:      make(map[string]domain.ClientRef),
		tickets:      make(map[string]domain.Ticket),
		transactions: make(map[string]domain.BankTransaction),
		trackingKeys: make(map[string]string),
	}
}

// RepositoryProvider exposes the store through every repository port.
func (s *Store) RepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TicketRepo:          s,
		BankTransactionRepo: s,
		PaymentRepo:         s,
		ReconciliationRepo:  s,
	}
}

// --- seeding, for data owned by other systems ---

// AddClient stores a client record that tickets can reference.
func (s *Store) AddClient(c domain.ClientRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ClientID] = c
}

// AddTicket stores a ticket as the collections workflow would create it.
func (s *Store) AddTicket(t domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Client = nil
	s.tickets[t.TicketID] = t
}

// AddPayment stores a payment ledger record.
func (s *Store) AddPayment(p domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append(s.payments, p)
}

// --- fault injection ---

// FailSavesWith makes every SaveBankTransaction call fail with err. Nil clears it.
func (s *Store) FailSavesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// FailLinkAfterTicketUpdate makes LinkTicketToTransaction fail with err after the ticket
// has been flagged but before the transaction is linked. Nil clears it.
func (s *Store) FailLinkAfterTicketUpdate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.midLinkErr = err
}

// TransactionCount returns the number of stored bank transactions.
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// --- TicketReader ---

func (s *Store) FindTicketByID(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tickets[ticketID]
	if !ok {
		return nil, apperrors.NewNotFoundError("ticket not found: " + ticketID)
	}
	t = s.withClient(t)
	return &t, nil
}

func (s *Store) ListUnreconciledTickets(ctx context.Context, limit int) ([]domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filterTickets(func(t domain.Ticket) bool { return !t.Reconciled })
	return truncate(out, limit), nil
}

func (s *Store) ListUnreconciledTicketsBetween(ctx context.Context, window domain.DateWindow) ([]domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterTickets(func(t domain.Ticket) bool {
		return !t.Reconciled && window.Contains(t.OccurredAt)
	}), nil
}

// filterTickets returns matching tickets newest first, clients attached.
func (s *Store) filterTickets(keep func(domain.Ticket) bool) []domain.Ticket {
	out := make([]domain.Ticket, 0)
	for _, t := range s.tickets {
		if keep(t) {
			out = append(out, s.withClient(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.OccurredAt.Equal(b.OccurredAt) {
			return a.OccurredAt.After(b.OccurredAt)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.TicketID < b.TicketID
	})
	return out
}

func (s *Store) withClient(t domain.Ticket) domain.Ticket {
	if c, ok := s.clients[t.ClientID]; ok {
		t.Client = &c
	} else {
		t.Client = nil
	}
	return t
}

// --- BankTransactionReader / Writer ---

func (s *Store) FindBankTransactionByID(ctx context.Context, transactionID string) (*domain.BankTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[transactionID]
	if !ok {
		return nil, apperrors.NewNotFoundError("bank transaction not found: " + transactionID)
	}
	return &tx, nil
}

func (s *Store) FindBankTransactionByTrackingKey(ctx context.Context, trackingKey string) (*domain.BankTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.trackingKeys[trackingKey]
	if !ok {
		return nil, apperrors.NewNotFoundError("no bank transaction with tracking key " + trackingKey)
	}
	tx := s.transactions[id]
	return &tx, nil
}

func (s *Store) SaveBankTransaction(ctx context.Context, tx domain.BankTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	if _, exists := s.transactions[tx.TransactionID]; exists {
		return apperrors.NewAppError(409, "bank transaction already exists", apperrors.ErrDuplicate)
	}
	if tx.TrackingKey != nil {
		if _, taken := s.trackingKeys[*tx.TrackingKey]; taken {
			return apperrors.NewAppError(409, "tracking key already stored", apperrors.ErrDuplicate)
		}
		s.trackingKeys[*tx.TrackingKey] = tx.TransactionID
	}
	s.transactions[tx.TransactionID] = tx
	return nil
}

func (s *Store) ListUnreconciledBankTransactions(ctx context.Context, limit int) ([]domain.BankTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filterTransactions(func(tx domain.BankTransaction) bool { return !tx.IsReconciled() })
	return truncate(out, limit), nil
}

func (s *Store) ListUnreconciledBankTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	var after *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		after = &c
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.filterTransactions(func(tx domain.BankTransaction) bool {
		if tx.IsReconciled() {
			return false
		}
		return after == nil || cursorOf(tx).After(*after)
	})

	if limit <= 0 || len(out) <= limit {
		return out, nil, nil
	}
	page := out[:limit]
	token := pagination.EncodeToken(cursorOf(page[len(page)-1]))
	return page, &token, nil
}

func (s *Store) ListUnlinkedCreditsBetween(ctx context.Context, window domain.DateWindow) ([]domain.BankTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterTransactions(func(tx domain.BankTransaction) bool {
		return !tx.IsReconciled() && tx.Credit.IsPositive() && window.Contains(tx.OperationDate)
	}), nil
}

// filterTransactions returns matching transactions in (operation date, created at, id) DESC order.
func (s *Store) filterTransactions(keep func(domain.BankTransaction) bool) []domain.BankTransaction {
	out := make([]domain.BankTransaction, 0)
	for _, tx := range s.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return cursorOf(out[j]).After(cursorOf(out[i]))
	})
	return out
}

func cursorOf(tx domain.BankTransaction) pagination.Cursor {
	return pagination.Cursor{OperationDate: tx.OperationDate, CreatedAt: tx.CreatedAt, ID: tx.TransactionID}
}

// --- PaymentReader ---

func (s *Store) ListOrphanBankPayments(ctx context.Context, window domain.DateWindow) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Payment, 0)
	for _, p := range s.payments {
		if p.BankSettled && p.TicketID == nil && window.Contains(p.PaidAt) {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- ReconciliationLinker ---

// LinkTicketToTransaction holds the write lock for the whole link, so readers never see
// one side changed without the other.
func (s *Store) LinkTicketToTransaction(ctx context.Context, ticketID, transactionID string, identifiedAt time.Time, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticket, ok := s.tickets[ticketID]
	if !ok {
		return apperrors.NewNotFoundError("ticket not found: " + ticketID)
	}
	tx, ok := s.transactions[transactionID]
	if !ok {
		return apperrors.NewNotFoundError("bank transaction not found: " + transactionID)
	}
	if ticket.Reconciled {
		return apperrors.NewConflictError("ticket already reconciled: " + ticketID)
	}
	if tx.IsReconciled() {
		return apperrors.NewConflictError("bank transaction already linked: " + transactionID)
	}

	before := ticket
	ticket.Reconciled = true
	s.tickets[ticketID] = ticket

	if s.midLinkErr != nil {
		s.tickets[ticketID] = before
		return s.midLinkErr
	}

	linkedTicket := ticketID
	linkedAt := identifiedAt
	tx.TicketID = &linkedTicket
	tx.IdentifiedAt = &linkedAt
	tx.LastUpdatedAt = identifiedAt
	tx.LastUpdatedBy = userID
	s.transactions[transactionID] = tx
	return nil
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

var (
	_ portsrepo.TicketRepositoryFacade          = (*Store)(nil)
	_ portsrepo.BankTransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.PaymentReader                   = (*Store)(nil)
	_ portsrepo.ReconciliationLinker            = (*Store)(nil)
)
