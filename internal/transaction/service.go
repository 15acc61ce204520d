package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=transaction
type Store interface {
	// ReplaceForUser atomically deletes the user's transactions and inserts
	// the given batch in its place.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, txs []*Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateParams struct {
	Date        string
	Description string
	Type        Type
	Amount      int64
	Category    string
}

// ReplaceBatch swaps out everything the user has for the new batch.
// Statement uploads are whole-file imports, so the previous upload is
// discarded rather than merged with.
func (s *Service) ReplaceBatch(ctx context.Context, userID uuid.UUID, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        p.Date,
			Description: p.Description,
			Type:        p.Type,
			Amount:      p.Amount,
			Category:    p.Category,
			CreatedAt:   now,
		}
	}

	if err := s.store.ReplaceForUser(ctx, userID, txs); err != nil {
		return nil, fmt.Errorf("replacing transactions: %w", err)
	}

	return txs, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	return s.store.DeleteByUser(ctx, userID)
}
