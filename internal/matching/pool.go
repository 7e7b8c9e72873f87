package matching

import (
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Pool is the set of unreconciled bank transactions a matching pass draws from.
// It keeps the original order, removes by id in O(1) and indexes credits by amount.
type Pool struct {
	order    []string
	byID     map[string]domain.BankTransaction
	byAmount map[string][]string
}

// NewPool indexes txs. Later duplicates of an id are ignored.
func NewPool(txs []domain.BankTransaction) *Pool {
	p := &Pool{
		order:    make([]string, 0, len(txs)),
		byID:     make(map[string]domain.BankTransaction, len(txs)),
		byAmount: make(map[string][]string),
	}
	for _, tx := range txs {
		if _, seen := p.byID[tx.TransactionID]; seen {
			continue
		}
		p.order = append(p.order, tx.TransactionID)
		p.byID[tx.TransactionID] = tx
		key := amountKey(tx.Credit)
		p.byAmount[key] = append(p.byAmount[key], tx.TransactionID)
	}
	return p
}

// Len returns the number of transactions still in the pool.
func (p *Pool) Len() int {
	return len(p.byID)
}

// Contains reports whether id is still in the pool.
func (p *Pool) Contains(id string) bool {
	_, ok := p.byID[id]
	return ok
}

// Remove drops id from the pool. It reports whether id was present.
func (p *Pool) Remove(id string) bool {
	if _, ok := p.byID[id]; !ok {
		return false
	}
	delete(p.byID, id)
	return true
}

// Remaining returns the transactions still in the pool, in original order.
func (p *Pool) Remaining() []domain.BankTransaction {
	out := make([]domain.BankTransaction, 0, len(p.byID))
	for _, id := range p.order {
		if tx, ok := p.byID[id]; ok {
			out = append(out, tx)
		}
	}
	return out
}

// WithCredit returns the remaining transactions whose credit equals amount exactly,
// in original order.
func (p *Pool) WithCredit(amount decimal.Decimal) []domain.BankTransaction {
	ids := p.byAmount[amountKey(amount)]
	out := make([]domain.BankTransaction, 0, len(ids))
	for _, id := range ids {
		tx, ok := p.byID[id]
		if !ok || !tx.Credit.Equal(amount) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// amountKey is a canonical string for equal decimals: 1500, 1500.0 and 1500.00 share a key.
func amountKey(d decimal.Decimal) string {
	return d.String()
}
