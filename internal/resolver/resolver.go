// Package resolver computes the canonical category identity of a
// transaction from its categorization, whatever scheme it uses.
package resolver

import (
	"github.com/lucasvieira/centavo/internal/catalog"
	"github.com/lucasvieira/centavo/internal/model"
)

// Resolve returns the single canonical category of a transaction. It never
// fails: dangling references and unknown codes degrade to a synthesized
// pseudo-category, and an absent categorization yields the uncategorized
// sentinel. Resolution is deterministic for a fixed (transaction, catalog)
// pair.
//
// Precedence, first match wins:
//  1. a direct Category reference, used verbatim;
//  2. a string matching a global code name;
//  3. a string matching a user category id;
//  4. any other non-empty string, synthesized as its own pseudo-category;
//  5. nothing at all, the uncategorized sentinel.
//
// The order matters: a direct reference is always more trustworthy than a
// string that may collide between the code and id schemes.
func Resolve(tx model.Transaction, cat *catalog.Catalog) model.ResolvedCategory {
	if direct, ok := tx.Categorization.Direct(); ok {
		return direct.Resolved()
	}

	raw, ok := tx.Categorization.Raw()
	if !ok {
		return model.Uncategorized()
	}

	if code, found := cat.GlobalCode(raw); found {
		// Global codes are not nestable, so the result has no parent.
		return model.ResolvedCategory{
			ID:     code.Name,
			Name:   code.Label,
			Type:   code.Type,
			Color:  code.Color,
			Source: model.SourceGlobalCode,
		}
	}

	if owned, found := cat.CategoryByID(raw); found {
		return owned.Resolved()
	}

	// Unknown strings still render something meaningful instead of being
	// silently dropped.
	return model.ResolvedCategory{
		ID:     raw,
		Name:   raw,
		Type:   categoryTypeFor(tx.Type),
		Color:  model.DefaultCategoryColor,
		Source: model.SourceSynthesized,
	}
}

func categoryTypeFor(t model.TransactionType) model.CategoryType {
	if t == model.TransactionTypeIncome {
		return model.CategoryTypeIncome
	}
	return model.CategoryTypeExpense
}
