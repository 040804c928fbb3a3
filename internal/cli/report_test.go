package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasvieira/centavo/internal/insights"
	"github.com/lucasvieira/centavo/internal/model"
	"github.com/lucasvieira/centavo/internal/timewindow"
)

func TestRenderReport(t *testing.T) {
	march := timewindow.MonthKey{Year: 2024, Month: time.March}
	pct := decimal.NewFromInt(80)

	report := &insights.Report{
		Buckets: []timewindow.MonthKey{march},
		Insights: []insights.CategoryInsight{
			{
				Category: model.ResolvedCategory{ID: "moradia", Name: "Moradia", Source: model.SourceCategory},
				Bucket:   march,
				Current: insights.MonthTotals{
					Total:        decimal.NewFromInt(800),
					Transactions: 1,
				},
				PreviousTotal: decimal.Zero,
				Budget: &insights.BudgetInsight{
					Amount:     decimal.NewFromInt(1000),
					Spent:      decimal.NewFromInt(800),
					Remaining:  decimal.NewFromInt(200),
					Percentage: &pct,
				},
			},
			{
				Category:      model.Uncategorized(),
				Bucket:        march,
				Current:       insights.MonthTotals{Total: decimal.Zero},
				PreviousTotal: decimal.Zero,
			},
		},
	}

	out := RenderReport(report)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "2024-03")
	assert.Contains(t, out, "Moradia")
	assert.Contains(t, out, "800.00")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "(80%)")
	assert.Contains(t, out, "Sem categoria")
	// Variation without a defined value renders as unavailable, never a
	// division artifact.
	assert.Contains(t, out, "n/a")
}
