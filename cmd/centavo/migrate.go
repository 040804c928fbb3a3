package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucasvieira/centavo/internal/cli"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Create or upgrade the local database schema to the latest version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// initStorage migrates as part of startup.
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Println(cli.FormatSuccess("Database schema is up to date"))
			return nil
		},
	}
}
