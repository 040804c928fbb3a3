package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasvieira/centavo/internal/model"
)

// SetBudget inserts or replaces the budget target for one
// (category, year, month).
func (s *SQLiteStorage) SetBudget(ctx context.Context, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO budgets (user_id, category_id, year, month, amount)
		VALUES (?, ?, ?, ?, ?)`,
		budget.UserID, budget.CategoryID, budget.Year, int(budget.Month), budget.Amount.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to set budget: %w", err)
	}

	return nil
}

// GetBudgets returns all budget rows of a user.
func (s *SQLiteStorage) GetBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, category_id, year, month, amount
		FROM budgets
		WHERE user_id = ?
		ORDER BY year, month, category_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var month int
		var amount string
		if err := rows.Scan(&b.UserID, &b.CategoryID, &b.Year, &month, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for budget %s %d-%02d: %w", b.CategoryID, b.Year, month, err)
		}
		b.Month = time.Month(month)
		b.Amount = parsed
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}
