package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lucasvieira/centavo/internal/common"
	"github.com/lucasvieira/centavo/internal/model"
)

// ErrNestedCategory indicates an attempt to create a category whose parent
// already has a parent; only one level of nesting is supported.
var ErrNestedCategory = errors.New("category nesting exceeds one level")

// CreateCategory persists a new user category, enforcing the one-level
// nesting rule against the parent already on record.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	if category.ParentID != "" {
		parent, err := s.getCategory(ctx, category.UserID, category.ParentID)
		if err != nil {
			return fmt.Errorf("failed to look up parent category: %w", err)
		}
		if parent == nil {
			return fmt.Errorf("%w: parent category %s", common.ErrNotFound, category.ParentID)
		}
		if parent.ParentID != "" {
			return fmt.Errorf("%w: %s -> %s -> %s",
				ErrNestedCategory, category.ID, parent.ID, parent.ParentID)
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, user_id, name, type, color, parent_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		category.ID, category.UserID, category.Name, string(category.Type),
		nullString(category.Color), nullString(category.ParentID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	slog.Debug("created category", "id", category.ID, "name", category.Name)
	return nil
}

// GetCategories returns all categories of a user in insertion order.
func (s *SQLiteStorage) GetCategories(ctx context.Context, userID string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, type, color, parent_id
		FROM categories
		WHERE user_id = ?
		ORDER BY rowid`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category. Transactions referencing it are kept;
// they fall back to uncategorized (or a synthesized identity) at
// resolution time.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE user_id = ? AND id = ?`, userID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: category %s", common.ErrNotFound, categoryID)
	}

	return nil
}

func (s *SQLiteStorage) getCategory(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, type, color, parent_id
		FROM categories
		WHERE user_id = ? AND id = ?`, userID, categoryID)

	cat, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (model.Category, error) {
	var cat model.Category
	var catType string
	var color, parentID sql.NullString

	if err := row.Scan(&cat.ID, &cat.UserID, &cat.Name, &catType, &color, &parentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, err
		}
		return model.Category{}, fmt.Errorf("failed to scan category: %w", err)
	}

	cat.Type = model.CategoryType(catType)
	cat.Color = color.String
	cat.ParentID = parentID.String
	return cat, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
