package service

import (
	"context"
	"slices"
	"sync"

	"foodcourt-pos/pos-svc/internal/domain"
)

// Ledger owns the transaction history, newest first.
type Ledger struct {
	mu    sync.RWMutex
	store SnapshotStore
	txs   []domain.Transaction
}

func NewLedger(store SnapshotStore) *Ledger {
	return &Ledger{store: store}
}

// Load reads the history. Pass seed only together with a freshly seeded
// catalog, otherwise the demo transactions point at tenants that may not exist.
func (l *Ledger) Load(ctx context.Context, seed bool) error {
	txs, found, err := loadCollection[domain.Transaction](ctx, l.store, KeyTransactions)
	if err != nil {
		return err
	}
	if !found && seed {
		txs = DemoTransactions()
	}
	l.mu.Lock()
	l.txs = txs
	l.mu.Unlock()
	return nil
}

func (l *Ledger) Prepend(ctx context.Context, tx domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	updated := make([]domain.Transaction, 0, len(l.txs)+1)
	updated = append(updated, tx)
	updated = append(updated, l.txs...)
	if err := saveCollection(ctx, l.store, KeyTransactions, updated); err != nil {
		return err
	}
	l.txs = updated
	return nil
}

// Remove undoes a Prepend whose follow-up steps failed.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := slices.IndexFunc(l.txs, func(tx domain.Transaction) bool { return tx.ID == id })
	if idx < 0 {
		return nil
	}
	updated := slices.Delete(slices.Clone(l.txs), idx, idx+1)
	if err := saveCollection(ctx, l.store, KeyTransactions, updated); err != nil {
		return err
	}
	l.txs = updated
	return nil
}

func (l *Ledger) List() []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneOrEmpty(l.txs)
}

func (l *Ledger) Get(id string) (domain.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, tx := range l.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return domain.Transaction{}, false
}

func (l *Ledger) ByTenant(tenantID string) []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []domain.Transaction{}
	for _, tx := range l.txs {
		if tx.TenantID == tenantID {
			out = append(out, tx)
		}
	}
	return out
}
