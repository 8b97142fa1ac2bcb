package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"revtrain/internal/errorcatalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the Java defect catalog",
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List defect categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := errorcatalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		for _, c := range catalog.Categories() {
			fmt.Printf("%-24s %d errors\n", c, len(catalog.CategoryErrors(c)))
		}
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List the defects in one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := errorcatalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		errs := catalog.CategoryErrors(args[0])
		if len(errs) == 0 {
			return fmt.Errorf("unknown category %q", args[0])
		}
		for _, e := range errs {
			fmt.Printf("%s\n    %s\n", e.Name, e.Description)
		}
		return nil
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search defects by name or description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := errorcatalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		results := catalog.Search(strings.Join(args, " "))
		if len(results) == 0 {
			fmt.Println("No matching defects.")
			return nil
		}
		for _, e := range results {
			fmt.Printf("%s\n    %s\n", e.Label(), e.Description)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCategoriesCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
}
