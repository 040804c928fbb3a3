package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lucasvieira/centavo/internal/cli"
	"github.com/lucasvieira/centavo/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, and delete the categories transactions resolve against.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Long:  `Display the user's categories followed by the fixed global codes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx, currentUser())
			if err != nil {
				return fmt.Errorf("failed to get categories: %w", err)
			}

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Parent"))

			for _, cat := range categories {
				parent := cat.ParentID
				if parent == "" {
					parent = cli.SubtleStyle.Render("—")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Type, parent)
			}

			for _, code := range model.GlobalCategoryCodes() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					code.Name,
					code.Label,
					code.Type,
					cli.SubtleStyle.Render("(global)"))
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		categoryType string
		color        string
		parentID     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category := &model.Category{
				ID:       uuid.NewString(),
				UserID:   currentUser(),
				Name:     strings.TrimSpace(args[0]),
				Type:     model.CategoryType(strings.ToUpper(categoryType)),
				Color:    color,
				ParentID: parentID,
			}
			if err := store.CreateCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (%s)", category.Name, category.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryType, "type", "t", "EXPENSE", "category type (INCOME or EXPENSE)")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().StringVar(&parentID, "parent", "", "parent category id (one level only)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. Transactions that referenced it are kept and fall
back to uncategorized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteCategory(ctx, currentUser(), args[0]); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %s", args[0])))
			return nil
		},
	}
}
