package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasvieira/centavo/internal/cli"
	"github.com/lucasvieira/centavo/internal/common"
	"github.com/lucasvieira/centavo/internal/ingest"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file with the columns
date,amount,type,description,category. The category column is free text:
it may name a global code (FOOD, SALARY, ...), a category id, or anything
else. Unknown values still aggregate under their own name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			transactions, err := ingest.ParseFile(args[0], currentUser())
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.SaveTransactions(ctx, transactions); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			common.LogInfo("imported transactions", common.Fields{"file": args[0], "count": len(transactions)})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions", len(transactions))))
			return nil
		},
	}
}
