// Package store holds transactions in process memory. It is the default
// backend: a single-user deployment parses a statement, looks at it, and
// uploads a fresh one next month, so nothing needs to survive a restart.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

type Store struct {
	mu  sync.RWMutex
	txs []*transaction.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) ReplaceForUser(ctx context.Context, userID uuid.UUID, txs []*transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = dropUser(s.txs, userID)
	s.txs = append(s.txs, txs...)

	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*transaction.Transaction

	for _, tx := range s.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}

	return out, nil
}

func (s *Store) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = dropUser(s.txs, userID)

	return nil
}

func dropUser(txs []*transaction.Transaction, userID uuid.UUID) []*transaction.Transaction {
	kept := txs[:0]

	for _, tx := range txs {
		if tx.UserID != userID {
			kept = append(kept, tx)
		}
	}

	return kept
}
