package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lucasvieira/centavo/internal/cli"
	"github.com/lucasvieira/centavo/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "set <category-id> <amount>",
		Short: "Set the budget target for a category and month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			ref := time.Now().UTC()
			if month != "" {
				ref, err = time.ParseInLocation("2006-01", month, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budget := model.Budget{
				UserID:     currentUser(),
				CategoryID: args[0],
				Year:       ref.Year(),
				Month:      ref.Month(),
				Amount:     amount,
			}
			if err := store.SetBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s in %04d-%02d set to %s",
				budget.CategoryID, budget.Year, int(budget.Month), amount.StringFixed(2))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "target month (YYYY-MM, default: current)")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budget targets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.GetBudgets(ctx, currentUser())
			if err != nil {
				return fmt.Errorf("failed to get budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'centavo budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Month"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Amount"))
			for _, b := range budgets {
				fmt.Fprintf(w, "%04d-%02d\t%s\t%s\n", b.Year, int(b.Month), b.CategoryID, b.Amount.StringFixed(2))
			}

			return nil
		},
	}
}
