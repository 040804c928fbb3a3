package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasvieira/centavo/internal/cli"
	"github.com/lucasvieira/centavo/internal/insights"
	"github.com/lucasvieira/centavo/internal/model"
	"github.com/lucasvieira/centavo/internal/timewindow"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "View monthly category insights",
		Long: `Compute per-category totals, month-over-month variation, and budget
adherence over a window of calendar months. Sub-category totals roll up
into their parents.`,
		RunE: runInsights,
	}

	cmd.Flags().IntP("months", "m", 3, "number of calendar months, ending at the current one")
	cmd.Flags().Bool("compare", false, "only current and previous month")
	cmd.Flags().StringP("type", "t", "EXPENSE", "transaction type to aggregate (INCOME, EXPENSE, or all)")

	_ = viper.BindPFlag("insights.months", cmd.Flags().Lookup("months"))
	_ = viper.BindPFlag("insights.compare", cmd.Flags().Lookup("compare"))
	_ = viper.BindPFlag("insights.type", cmd.Flags().Lookup("type"))

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	now := time.Now().UTC()

	var window timewindow.Window
	if viper.GetBool("insights.compare") {
		window = timewindow.CurrentAndPrevious(now)
	} else {
		var err error
		window, err = timewindow.LastNMonths(viper.GetInt("insights.months"), now)
		if err != nil {
			return err
		}
	}

	filter, err := parseTypeFilter(viper.GetString("insights.type"))
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	userID := currentUser()
	transactions, err := store.GetTransactions(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	categories, err := store.GetCategories(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	budgets, err := store.GetBudgets(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	report, err := insights.Aggregate(insights.Snapshot{
		Transactions: transactions,
		Categories:   categories,
		GlobalCodes:  model.GlobalCategoryCodes(),
		Budgets:      budgets,
	}, window, filter)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderReport(report))
	return nil
}

func parseTypeFilter(raw string) (model.TransactionType, error) {
	switch raw {
	case "all", "":
		return "", nil
	case string(model.TransactionTypeIncome):
		return model.TransactionTypeIncome, nil
	case string(model.TransactionTypeExpense):
		return model.TransactionTypeExpense, nil
	default:
		return "", fmt.Errorf("invalid type filter %q (want INCOME, EXPENSE, or all)", raw)
	}
}
