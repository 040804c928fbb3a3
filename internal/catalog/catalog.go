// Package catalog provides a read-only index over a user's categories and
// the fixed global category code table.
package catalog

import (
	"errors"
	"fmt"

	"github.com/lucasvieira/centavo/internal/model"
)

// Construction errors.
var (
	// ErrDuplicateCategory indicates two categories share an id.
	ErrDuplicateCategory = errors.New("duplicate category id")
	// ErrNestedChild indicates a category nests deeper than one level.
	ErrNestedChild = errors.New("category nesting exceeds one level")
	// ErrEmptyCategoryID indicates a category without an id.
	ErrEmptyCategoryID = errors.New("category id cannot be empty")
)

// Catalog is an immutable lookup view over category data supplied by the
// caller. It performs no I/O and holds no mutable state.
type Catalog struct {
	byID     map[string]model.Category
	children map[string][]model.Category
	codes    map[string]model.GlobalCategoryCode
	ordered  []model.Category
}

// New builds a catalog from raw category records and the global code
// table. Construction is O(n) and validates the one-level nesting rule: a
// category that has a parent must not itself be a parent.
func New(categories []model.Category, codes []model.GlobalCategoryCode) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[string]model.Category, len(categories)),
		children: make(map[string][]model.Category),
		codes:    make(map[string]model.GlobalCategoryCode, len(codes)),
		ordered:  make([]model.Category, 0, len(categories)),
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, ErrEmptyCategoryID
		}
		if _, exists := c.byID[cat.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.ID)
		}
		c.byID[cat.ID] = cat
		c.ordered = append(c.ordered, cat)
	}

	// Children are indexed in insertion order.
	for _, cat := range c.ordered {
		if cat.ParentID == "" {
			continue
		}
		c.children[cat.ParentID] = append(c.children[cat.ParentID], cat)
	}

	// One level of nesting only: a category with a parent must not itself
	// be a parent. This also rejects longer chains, since the middle link
	// of any chain has both.
	for _, cat := range c.ordered {
		if cat.ParentID != "" && len(c.children[cat.ID]) > 0 {
			return nil, fmt.Errorf("%w: %s has both a parent and children",
				ErrNestedChild, cat.ID)
		}
	}

	for _, code := range codes {
		c.codes[code.Name] = code
	}

	return c, nil
}

// CategoryByID looks up a category by its id.
func (c *Catalog) CategoryByID(id string) (model.Category, bool) {
	cat, ok := c.byID[id]
	return cat, ok
}

// GlobalCode looks up a fixed global category code by its name.
func (c *Catalog) GlobalCode(name string) (model.GlobalCategoryCode, bool) {
	code, ok := c.codes[name]
	return code, ok
}

// ChildrenOf returns the direct children of a category in insertion
// order, or an empty slice if it has none.
func (c *Catalog) ChildrenOf(categoryID string) []model.Category {
	return c.children[categoryID]
}

// Categories returns all categories in insertion order.
func (c *Catalog) Categories() []model.Category {
	return c.ordered
}
