// Package insights computes per-category monthly spend totals,
// month-over-month variation, and budget adherence over a closed snapshot
// of transactions, categories, and budgets.
package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lucasvieira/centavo/internal/catalog"
	"github.com/lucasvieira/centavo/internal/model"
	"github.com/lucasvieira/centavo/internal/resolver"
	"github.com/lucasvieira/centavo/internal/timewindow"
)

var oneHundred = decimal.NewFromInt(100)

// Aggregate folds the snapshot into a per-category, per-month report over
// the requested window. filter restricts the fold to one transaction type;
// an empty filter includes everything.
//
// The computation is pure: it performs no I/O, never mutates the snapshot,
// and substitutes explicit nil markers for any value that would require a
// division by zero. The only errors are caller contract violations (an
// empty window, or a catalog that breaks the one-level nesting rule),
// rejected before any aggregation begins.
func Aggregate(snap Snapshot, window timewindow.Window, filter model.TransactionType) (*Report, error) {
	buckets := window.Buckets()
	if len(buckets) == 0 {
		return nil, fmt.Errorf("%w: window has no buckets", timewindow.ErrInvalidWindow)
	}

	cat, err := catalog.New(snap.Categories, snap.GlobalCodes)
	if err != nil {
		return nil, fmt.Errorf("invalid category catalog: %w", err)
	}

	// The month before the oldest bucket is accumulated too, so the oldest
	// bucket still gets a previous-month total and a variation.
	preWindow := buckets[0].Previous()

	totals := make(map[timewindow.MonthKey]map[string]*MonthTotals, len(buckets)+1)
	seen := make(map[string]model.ResolvedCategory)

	for _, tx := range snap.Transactions {
		if filter != "" && tx.Type != filter {
			continue
		}
		key := timewindow.MonthKeyOf(tx.Date)
		if key != preWindow && !window.Contains(key) {
			continue
		}

		resolved := resolver.Resolve(tx, cat)
		if _, ok := seen[resolved.ID]; !ok {
			seen[resolved.ID] = resolved
		}

		acc := totals[key]
		if acc == nil {
			acc = make(map[string]*MonthTotals)
			totals[key] = acc
		}
		cell := acc[resolved.ID]
		if cell == nil {
			cell = &MonthTotals{Total: decimal.Zero}
			acc[resolved.ID] = cell
		}
		cell.Total = cell.Total.Add(tx.Amount)
		cell.Transactions++
		if tx.Date.After(cell.LastTransactionDate) {
			cell.LastTransactionDate = tx.Date
		}
	}

	rollUp(cat, totals)

	order := rowOrder(cat, snap.GlobalCodes, seen, filter)
	budgets := indexBudgets(snap.Budgets)

	report := &Report{
		Buckets:  buckets,
		Insights: make([]CategoryInsight, 0, len(buckets)*len(order)),
	}
	for _, bucket := range buckets {
		previous := bucket.Previous()
		for _, identity := range order {
			current := cellOrZero(totals, bucket, identity.ID)
			prevTotal := cellOrZero(totals, previous, identity.ID).Total

			insight := CategoryInsight{
				Category:            identity,
				Bucket:              bucket,
				Current:             current,
				PreviousTotal:       prevTotal,
				VariationPercentage: variation(current.Total, prevTotal),
			}
			if amount, ok := budgets[budgetKey{identity.ID, bucket}]; ok {
				insight.Budget = budgetInsight(amount, current.Total)
			}
			report.Insights = append(report.Insights, insight)
		}
	}

	return report, nil
}

// rollUp adds each child category's totals into its parent, month by
// month. Only one level of nesting exists, so a single pass suffices and
// parents are never themselves rolled into anything.
func rollUp(cat *catalog.Catalog, totals map[timewindow.MonthKey]map[string]*MonthTotals) {
	for _, parent := range cat.Categories() {
		children := cat.ChildrenOf(parent.ID)
		if len(children) == 0 {
			continue
		}
		for _, acc := range totals {
			for _, child := range children {
				childCell := acc[child.ID]
				if childCell == nil {
					continue
				}
				parentCell := acc[parent.ID]
				if parentCell == nil {
					parentCell = &MonthTotals{Total: decimal.Zero}
					acc[parent.ID] = parentCell
				}
				parentCell.Total = parentCell.Total.Add(childCell.Total)
				parentCell.Transactions += childCell.Transactions
				if childCell.LastTransactionDate.After(parentCell.LastTransactionDate) {
					parentCell.LastTransactionDate = childCell.LastTransactionDate
				}
			}
		}
	}
}

// rowOrder fixes the category order of every bucket: catalog categories in
// insertion order, then global codes in table order, then anything else
// sorted by name, with the uncategorized sentinel always last.
func rowOrder(cat *catalog.Catalog, codes []model.GlobalCategoryCode, seen map[string]model.ResolvedCategory, filter model.TransactionType) []model.ResolvedCategory {
	var order []model.ResolvedCategory
	listed := make(map[string]bool)

	// Catalog categories appear even with zero activity in every bucket:
	// absence must never be conflated with a reported zero.
	for _, c := range cat.Categories() {
		if filter != "" && string(c.Type) != string(filter) {
			continue
		}
		order = append(order, c.Resolved())
		listed[c.ID] = true
	}

	for _, code := range codes {
		if identity, ok := seen[code.Name]; ok && !listed[code.Name] && identity.Source == model.SourceGlobalCode {
			order = append(order, identity)
			listed[code.Name] = true
		}
	}

	var rest []model.ResolvedCategory
	var uncategorized *model.ResolvedCategory
	for id, identity := range seen {
		if listed[id] {
			continue
		}
		if identity.IsUncategorized() {
			u := identity
			uncategorized = &u
			continue
		}
		rest = append(rest, identity)
	}
	sort.Slice(rest, func(i, j int) bool {
		if rest[i].Name != rest[j].Name {
			return rest[i].Name < rest[j].Name
		}
		return rest[i].ID < rest[j].ID
	})

	order = append(order, rest...)
	if uncategorized != nil {
		order = append(order, *uncategorized)
	}
	return order
}

// variation computes the month-over-month percentage change. It is nil
// when the previous total is zero and the current one is not, and exactly
// zero when both are zero; a zero denominator is never divided.
func variation(current, previous decimal.Decimal) *decimal.Decimal {
	switch {
	case previous.IsPositive():
		v := current.Sub(previous).Div(previous).Mul(oneHundred)
		return &v
	case current.IsZero():
		zero := decimal.Zero
		return &zero
	default:
		return nil
	}
}

func budgetInsight(amount, spent decimal.Decimal) *BudgetInsight {
	insight := &BudgetInsight{
		Amount:    amount,
		Spent:     spent,
		Remaining: amount.Sub(spent),
	}
	if !amount.IsZero() {
		p := spent.Div(amount).Mul(oneHundred)
		insight.Percentage = &p
	}
	return insight
}

type budgetKey struct {
	categoryID string
	bucket     timewindow.MonthKey
}

func indexBudgets(budgets []model.Budget) map[budgetKey]decimal.Decimal {
	index := make(map[budgetKey]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		key := budgetKey{b.CategoryID, timewindow.MonthKey{Year: b.Year, Month: b.Month}}
		index[key] = b.Amount
	}
	return index
}

func cellOrZero(totals map[timewindow.MonthKey]map[string]*MonthTotals, key timewindow.MonthKey, id string) MonthTotals {
	if acc := totals[key]; acc != nil {
		if cell := acc[id]; cell != nil {
			return *cell
		}
	}
	return MonthTotals{Total: decimal.Zero}
}
