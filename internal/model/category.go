package model

// CategoryType indicates whether a category tracks income or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "INCOME"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// DefaultCategoryColor is the neutral color applied when a category (or a
// synthesized pseudo-category) carries no color of its own.
const DefaultCategoryColor = "#9E9E9E"

// Category is a user-defined category. Categories nest at most one level:
// a category with a ParentID must not itself be a parent.
type Category struct {
	ID       string
	UserID   string
	Name     string
	Type     CategoryType
	Color    string
	ParentID string
}

// Resolved returns the canonical identity of the category itself,
// applying the neutral default color when it has none.
func (c Category) Resolved() ResolvedCategory {
	color := c.Color
	if color == "" {
		color = DefaultCategoryColor
	}
	return ResolvedCategory{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		Color:    color,
		ParentID: c.ParentID,
		Source:   SourceCategory,
	}
}

// ResolutionSource records which categorization scheme produced a
// ResolvedCategory.
type ResolutionSource int

const (
	// SourceUncategorized marks the distinguished "no category" sentinel.
	SourceUncategorized ResolutionSource = iota
	// SourceCategory marks a resolution backed by a user Category record.
	SourceCategory
	// SourceGlobalCode marks a resolution backed by a fixed global code.
	SourceGlobalCode
	// SourceSynthesized marks a pseudo-category synthesized from an
	// unknown categorization string.
	SourceSynthesized
)

// ResolvedCategory is the canonical category identity of a transaction
// after reconciling the three categorization schemes. Exactly one resolved
// identity exists per (transaction, catalog) pair.
type ResolvedCategory struct {
	ID       string
	Name     string
	Type     CategoryType
	Color    string
	ParentID string
	Source   ResolutionSource
}

// UncategorizedID is the reserved identity transactions without any
// categorization are counted under.
const UncategorizedID = "uncategorized"

// Uncategorized returns the sentinel identity for transactions that carry
// no categorization at all. It is not a Category.
func Uncategorized() ResolvedCategory {
	return ResolvedCategory{
		ID:     UncategorizedID,
		Name:   "Sem categoria",
		Color:  DefaultCategoryColor,
		Source: SourceUncategorized,
	}
}

// IsUncategorized reports whether r is the uncategorized sentinel.
func (r ResolvedCategory) IsUncategorized() bool {
	return r.Source == SourceUncategorized
}
