package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasvieira/centavo/internal/model"
)

// SaveTransactions persists a batch of transactions in a single database
// transaction. Existing ids are replaced.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO transactions
			(id, user_id, date, description, type, amount, category_ref, category_raw)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, txn := range transactions {
		var categoryRef, categoryRaw any
		if direct, ok := txn.Categorization.Direct(); ok {
			categoryRef = direct.ID
		}
		if raw, ok := txn.Categorization.Raw(); ok {
			categoryRaw = raw
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID, txn.UserID, txn.Date.UTC(), txn.Description,
			string(txn.Type), txn.Amount.String(), categoryRef, categoryRaw,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	slog.Debug("saved transactions", "count", len(transactions))
	return nil
}

// GetTransactions returns all transactions of a user. Direct category
// references are materialized from the categories table at load time, so
// the engine receives the categorization union already decided: a direct
// reference whose category was deleted degrades to the raw id string.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.user_id, t.date, t.description, t.type, t.amount,
			t.category_ref, t.category_raw,
			c.id, c.user_id, c.name, c.type, c.color, c.parent_id
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_ref AND c.user_id = t.user_id
		WHERE t.user_id = ?
		ORDER BY t.date, t.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

func scanTransaction(rows *sql.Rows) (model.Transaction, error) {
	var txn model.Transaction
	var date time.Time
	var txType, amount string
	var description, categoryRef, categoryRaw sql.NullString
	var catID, catUserID, catName, catType, catColor, catParent sql.NullString

	if err := rows.Scan(
		&txn.ID, &txn.UserID, &date, &description, &txType, &amount,
		&categoryRef, &categoryRaw,
		&catID, &catUserID, &catName, &catType, &catColor, &catParent,
	); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("corrupt amount for transaction %s: %w", txn.ID, err)
	}

	txn.Date = date.UTC()
	txn.Description = description.String
	txn.Type = model.TransactionType(txType)
	txn.Amount = parsed

	switch {
	case categoryRef.Valid && catID.Valid:
		txn.Categorization = model.DirectCategorization(model.Category{
			ID:       catID.String,
			UserID:   catUserID.String,
			Name:     catName.String,
			Type:     model.CategoryType(catType.String),
			Color:    catColor.String,
			ParentID: catParent.String,
		})
	case categoryRef.Valid:
		// Dangling reference: the category was deleted after the
		// transaction; degrade to the string scheme.
		txn.Categorization = model.RawCategorization(categoryRef.String)
	case categoryRaw.Valid:
		txn.Categorization = model.RawCategorization(categoryRaw.String)
	default:
		txn.Categorization = model.NoCategorization()
	}

	return txn, nil
}
