// Package postgres is the durable Store implementation, selected with
// STORE_DRIVER=postgres. It keeps the same replace-on-upload semantics as
// the in-memory store, with the delete and inserts in one database
// transaction so a failed upload leaves the previous batch intact.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Expected column order: id, user_id, date, description, type, amount, category, created_at.
// position (bigserial) preserves statement row order across reads.
func scanTransaction(rows *sql.Rows) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	if err := rows.Scan(
		&tx.ID, &tx.UserID, &tx.Date, &tx.Description, &typeStr, &tx.Amount, &tx.Category, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)

	return &tx, nil
}

func (s *Store) ReplaceForUser(ctx context.Context, userID uuid.UUID, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting previous batch: %w", err)
	}

	query := `
		INSERT INTO transactions (id, user_id, date, description, type, amount, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, tx := range txs {
		if _, err := dbTx.ExecContext(ctx, query,
			tx.ID,
			tx.UserID,
			tx.Date,
			tx.Description,
			tx.Type,
			tx.Amount,
			tx.Category,
			tx.CreatedAt,
		); err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, date, description, type, amount, category, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("deleting transactions: %w", err)
	}

	return nil
}
