package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasvieira/centavo/internal/model"
	"github.com/lucasvieira/centavo/internal/timewindow"
)

// Snapshot is the closed, read-only data set the aggregator works over.
// The caller is responsible for supplying a consistent snapshot; the
// engine never mutates it.
type Snapshot struct {
	Transactions []model.Transaction
	Categories   []model.Category
	GlobalCodes  []model.GlobalCategoryCode
	Budgets      []model.Budget
}

// MonthTotals accumulates one category's activity within one bucket.
type MonthTotals struct {
	LastTransactionDate time.Time
	Total               decimal.Decimal
	Transactions        int
}

// BudgetInsight compares a bucket's spend against its budget target.
// Percentage is nil when the target amount is zero; the raw value is
// reported otherwise, with any visual clamping left to the consumer.
type BudgetInsight struct {
	Amount     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Percentage *decimal.Decimal
}

// CategoryInsight is one (category, bucket) cell of the report.
// VariationPercentage is nil when the previous bucket's total was zero and
// the current one is not; it is exactly zero when both are zero. Budget is
// nil when no budget row exists for the category and month.
type CategoryInsight struct {
	Category            model.ResolvedCategory
	Bucket              timewindow.MonthKey
	Current             MonthTotals
	PreviousTotal       decimal.Decimal
	VariationPercentage *decimal.Decimal
	Budget              *BudgetInsight
}

// Report is the full aggregation output: one insight per (category,
// bucket) pair, buckets oldest first, categories in a stable order within
// each bucket.
type Report struct {
	Buckets  []timewindow.MonthKey
	Insights []CategoryInsight
}

// ForBucket returns the insights of a single bucket, preserving order.
func (r *Report) ForBucket(key timewindow.MonthKey) []CategoryInsight {
	var out []CategoryInsight
	for _, in := range r.Insights {
		if in.Bucket == key {
			out = append(out, in)
		}
	}
	return out
}
