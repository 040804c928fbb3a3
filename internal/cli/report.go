package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lucasvieira/centavo/internal/insights"
)

// RenderReport renders an insight report as one table per month bucket,
// oldest month first.
func RenderReport(report *insights.Report) string {
	var b strings.Builder

	for _, bucket := range report.Buckets {
		rows := report.ForBucket(bucket)
		b.WriteString(TitleStyle.Render(ChartIcon+" "+bucket.String()) + "\n")
		b.WriteString(renderBucketTable(rows))
		b.WriteString("\n")
	}

	return b.String()
}

func renderBucketTable(rows []insights.CategoryInsight) string {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Total"),
		TableHeaderStyle.Render("Txs"),
		TableHeaderStyle.Render("Prev"),
		TableHeaderStyle.Render("Δ%"),
		TableHeaderStyle.Render("Budget"))

	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			row.Category.Name,
			row.Current.Total.StringFixed(2),
			row.Current.Transactions,
			row.PreviousTotal.StringFixed(2),
			formatVariation(row),
			formatBudget(row))
	}

	_ = w.Flush()
	return buf.String()
}

func formatVariation(row insights.CategoryInsight) string {
	if row.VariationPercentage == nil {
		return SubtleStyle.Render("n/a")
	}
	return row.VariationPercentage.StringFixed(1) + "%"
}

func formatBudget(row insights.CategoryInsight) string {
	budget := row.Budget
	if budget == nil {
		return SubtleStyle.Render("—")
	}

	status := fmt.Sprintf("%s of %s", budget.Spent.StringFixed(2), budget.Amount.StringFixed(2))
	if budget.Percentage == nil {
		return status
	}

	pct := fmt.Sprintf("%s (%s%%)", status, budget.Percentage.StringFixed(0))
	if budget.Remaining.IsNegative() {
		return ErrorStyle.Render(pct)
	}
	return pct
}
