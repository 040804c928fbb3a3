package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasvieira/centavo/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidBudget      = errors.New("invalid budget")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}
	for i, tx := range transactions {
		if err := validateTransaction(tx); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(tx model.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if tx.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidTransaction)
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if tx.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidTransaction)
	}
	switch tx.Type {
	case model.TransactionTypeIncome, model.TransactionTypeExpense:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, tx.Type)
	}
	return nil
}

// validateCategory validates a category before persistence.
func validateCategory(category *model.Category) error {
	if category == nil {
		return fmt.Errorf("%w: category", ErrNilParameter)
	}
	if category.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidCategory)
	}
	if category.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidCategory)
	}
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCategory)
	}
	switch category.Type {
	case model.CategoryTypeIncome, model.CategoryTypeExpense:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidCategory, category.Type)
	}
	return nil
}

// validateBudget validates a budget row before persistence.
func validateBudget(budget model.Budget) error {
	if budget.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidBudget)
	}
	if budget.CategoryID == "" {
		return fmt.Errorf("%w: missing category ID", ErrInvalidBudget)
	}
	if budget.Year <= 0 {
		return fmt.Errorf("%w: invalid year %d", ErrInvalidBudget, budget.Year)
	}
	if budget.Month < 1 || budget.Month > 12 {
		return fmt.Errorf("%w: invalid month %d", ErrInvalidBudget, budget.Month)
	}
	if budget.Amount.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidBudget)
	}
	return nil
}
