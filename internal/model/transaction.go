// Package model defines the domain types shared across the engine.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction.
type TransactionType string

const (
	// TransactionTypeIncome represents money coming in.
	TransactionTypeIncome TransactionType = "INCOME"
	// TransactionTypeExpense represents money going out.
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// CategorizationKind tags the shape of a transaction's categorization.
type CategorizationKind int

const (
	// CategorizationNone means the transaction carries no categorization.
	CategorizationNone CategorizationKind = iota
	// CategorizationDirect means the transaction references a Category
	// record directly.
	CategorizationDirect
	// CategorizationRaw means the transaction carries a free-form string
	// that may name a global code or a category id.
	CategorizationRaw
)

// Categorization is the tagged union of the three categorization schemes a
// transaction may use. The shape is decided once, at ingestion, so the
// resolver never re-inspects an ambiguous value.
type Categorization struct {
	category *Category
	raw      string
	kind     CategorizationKind
}

// NoCategorization returns the absent categorization.
func NoCategorization() Categorization {
	return Categorization{kind: CategorizationNone}
}

// DirectCategorization returns a categorization carrying the Category
// record itself.
func DirectCategorization(category Category) Categorization {
	return Categorization{kind: CategorizationDirect, category: &category}
}

// RawCategorization returns a categorization carrying a free-form string.
// An empty string is treated as absent.
func RawCategorization(raw string) Categorization {
	if raw == "" {
		return NoCategorization()
	}
	return Categorization{kind: CategorizationRaw, raw: raw}
}

// Kind reports the shape of the categorization.
func (c Categorization) Kind() CategorizationKind {
	return c.kind
}

// Direct returns the referenced Category record, if any.
func (c Categorization) Direct() (Category, bool) {
	if c.kind != CategorizationDirect || c.category == nil {
		return Category{}, false
	}
	return *c.category, true
}

// Raw returns the free-form categorization string, if any.
func (c Categorization) Raw() (string, bool) {
	if c.kind != CategorizationRaw {
		return "", false
	}
	return c.raw, true
}

// Transaction is a single immutable financial record. Date is a calendar
// date and must be read in UTC terms; Amount is always non-negative, with
// direction carried by Type.
type Transaction struct {
	Date           time.Time
	ID             string
	UserID         string
	Description    string
	Type           TransactionType
	Amount         decimal.Decimal
	Categorization Categorization
}
