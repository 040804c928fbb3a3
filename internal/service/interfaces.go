// Package service defines the interfaces for the application's services.
package service

import (
	"context"

	"github.com/lucasvieira/centavo/internal/model"
)

// Storage defines the contract for the persistence layer. It materializes
// the closed snapshots the insight engine consumes; the engine itself
// never touches storage.
type Storage interface {
	// Category operations
	CreateCategory(ctx context.Context, category *model.Category) error
	GetCategories(ctx context.Context, userID string) ([]model.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error

	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context, userID string) ([]model.Transaction, error)

	// Budget operations
	SetBudget(ctx context.Context, budget model.Budget) error
	GetBudgets(ctx context.Context, userID string) ([]model.Budget, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
